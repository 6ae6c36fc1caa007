package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"poll_uploader/src/common"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// printSheets lists the sheets of a workbook so it is clear which one is read.
func printSheets(path string) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to open workbook for sheet list")
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	fmt.Printf("Found %d sheets (reading the first):\n", len(sheets))
	for i, name := range sheets {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	fmt.Println()
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	defaultPath := common.EXCEL_FILE_PATH
	if v := os.Getenv("EXCEL_FILE_PATH"); v != "" {
		defaultPath = v
	}
	filePath := flag.String("file", defaultPath, "Path to the .xlsx/.csv file to preview")
	maxRows := flag.Int("rows", 0, "Maximum number of rows to print (0 prints all)")
	flag.Parse()

	rows, err := common.LoadPollRows(*filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load poll rows")
	}

	fmt.Printf("Opened %q\n", *filePath)
	if !strings.EqualFold(filepath.Ext(*filePath), ".csv") {
		printSheets(*filePath)
	}

	limit := len(rows)
	if *maxRows > 0 && *maxRows < limit {
		limit = *maxRows
	}
	qualifying := 0
	now := time.Now()
	for i, row := range rows {
		resp, hasResponse := common.NewPollResponse(row, common.QUESTION_COLUMNS, now)
		action := "skip"
		if hasResponse {
			action = "upload"
			qualifying++
		}
		if i < limit {
			fmt.Printf("  %4d | %s | %s\n", row.Number, resp, action)
		}
	}

	fmt.Printf("\n%d rows read, %d would be uploaded.\n", len(rows), qualifying)
}
