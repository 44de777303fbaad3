// seed_species.go — standalone script to parse a species CSV and seed the
// catalog via the FloraRisk API.
//
// The CSV columns are:
//
//	scientific_name,common_name,sf,asr,via,ldd,vrs,sgr,ha,nmd,published_risk,notes
//
// Linguistic columns hold term names ("Very High"); published_risk may be
// empty. Usage:
//
//	go run scripts/seed_species.go -csv species.csv -api http://localhost:8700 -token $ADMIN_TOKEN
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type speciesRecord struct {
	ScientificName string  `json:"scientific_name"`
	CommonName     string  `json:"common_name,omitempty"`
	SF             float64 `json:"sf"`
	ASR            float64 `json:"asr"`
	VIA            float64 `json:"via"`
	LDD            float64 `json:"ldd"`
	VRS            string  `json:"vrs"`
	SGR            string  `json:"sgr"`
	HA             string  `json:"ha"`
	NMD            string  `json:"nmd"`
	PublishedRisk  string  `json:"published_risk,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

func main() {
	csvPath := flag.String("csv", "species.csv", "path to species CSV file")
	apiURL := flag.String("api", "http://localhost:8700", "FloraRisk API base URL")
	token := flag.String("token", "", "admin bearer token")
	dryRun := flag.Bool("dry-run", false, "print records without posting")
	flag.Parse()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open %s: %v", *csvPath, err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatalf("parse %s: %v", *csvPath, err)
	}

	log.Printf("parsed %d species from %s", len(records), *csvPath)

	if *dryRun {
		for i, rec := range records {
			risk := rec.PublishedRisk
			if risk == "" {
				risk = "unpublished"
			}
			fmt.Printf("[%d] %s (sf=%g, asr=%g, via=%g, ldd=%g, risk=%s)\n",
				i+1, rec.ScientificName, rec.SF, rec.ASR, rec.VIA, rec.LDD, risk)
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, rec := range records {
		body, _ := json.Marshal(rec)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/species", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", rec.ScientificName, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		if *token != "" {
			req.Header.Set("Authorization", "Bearer "+*token)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", rec.ScientificName, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", rec.ScientificName, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func parseCSV(r io.Reader) ([]speciesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	// Skip a header row if the first numeric column does not parse.
	start := 0
	if len(rows[0]) > 2 {
		if _, err := strconv.ParseFloat(rows[0][2], 64); err != nil {
			start = 1
		}
	}

	var records []speciesRecord
	for i, row := range rows[start:] {
		if len(row) < 10 {
			return nil, fmt.Errorf("row %d: expected at least 10 columns, got %d", i+start+1, len(row))
		}
		rec := speciesRecord{
			ScientificName: strings.TrimSpace(row[0]),
			CommonName:     strings.TrimSpace(row[1]),
			VRS:            strings.TrimSpace(row[6]),
			SGR:            strings.TrimSpace(row[7]),
			HA:             strings.TrimSpace(row[8]),
			NMD:            strings.TrimSpace(row[9]),
		}
		for j, dst := range []*float64{&rec.SF, &rec.ASR, &rec.VIA, &rec.LDD} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[2+j]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %v", i+start+1, 3+j, err)
			}
			*dst = v
		}
		if len(row) > 10 {
			rec.PublishedRisk = strings.TrimSpace(row[10])
		}
		if len(row) > 11 {
			rec.Notes = strings.TrimSpace(row[11])
		}
		if rec.ScientificName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
