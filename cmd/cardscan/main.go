package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/extract"
	"github.com/lbeckmann/cardvault/internal/vcard"
)

// cardscan runs the extraction pipeline offline: OCR text in, fused contact
// JSON out. No database, no network.
func main() {
	var (
		textPath = flag.String("text", "", "path to a file with OCR lines (or - for stdin)")
		qrPath   = flag.String("qr", "", "path to a file with the raw QR payload (optional)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *textPath == "" && *qrPath == "" {
		logger.Error("usage", "cmd", "cardscan -text <file|-> [-qr <file>]")
		os.Exit(2)
	}

	var lines []string
	if *textPath != "" {
		raw, err := readInput(*textPath)
		if err != nil {
			logger.Error("failed to read ocr text", "path", *textPath, "error", err)
			os.Exit(1)
		}
		lines = strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	}

	parser := extract.NewParser(extract.DefaultVocabulary())
	ocrCand := parser.Parse(lines)

	var qrCand *contact.Candidate
	if *qrPath != "" {
		payload, err := readInput(*qrPath)
		if err != nil {
			logger.Error("failed to read qr payload", "path", *qrPath, "error", err)
			os.Exit(1)
		}
		c := vcard.ParsePayload(payload)
		qrCand = &c
	}

	merged := contact.Merge(ocrCand, qrCand)
	outcome := contact.ClassifyOutcome(merged)

	out, err := json.MarshalIndent(struct {
		contact.Candidate
		Outcome string `json:"outcome"`
	}{merged, outcome.String()}, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
