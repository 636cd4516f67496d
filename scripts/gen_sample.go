// gen_sample.go — standalone script to generate a sample decision matrix
// CSV and optionally submit it to a running topsis-web instance.
//
// Usage:
//
//	go run scripts/gen_sample.go -out sample.csv -rows 8
//	go run scripts/gen_sample.go -out sample.csv -api http://localhost:8700 -weights 1,1,1,2 -impacts +,+,-,+
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
)

var criteria = []string{"Price", "Storage", "Camera", "Looks"}

func main() {
	out := flag.String("out", "sample.csv", "output CSV path")
	rows := flag.Int("rows", 8, "number of alternatives")
	apiURL := flag.String("api", "", "topsis-web base URL; when set, submit the file after writing it")
	weights := flag.String("weights", "1,1,1,1", "weights to submit")
	impacts := flag.String("impacts", "-,+,+,+", "impacts to submit")
	email := flag.String("email", "", "optional delivery address")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	w := csv.NewWriter(f)

	header := append([]string{"Model"}, criteria...)
	if err := w.Write(header); err != nil {
		log.Fatalf("write header: %v", err)
	}
	for i := 0; i < *rows; i++ {
		row := []string{fmt.Sprintf("M%d", i+1)}
		row = append(row,
			strconv.Itoa(150+rng.Intn(150)),   // Price
			strconv.Itoa(8*(1+rng.Intn(8))),   // Storage
			strconv.Itoa(8+rng.Intn(40)),      // Camera
			strconv.FormatFloat(1+4*rng.Float64(), 'f', 1, 64), // Looks
		)
		if err := w.Write(row); err != nil {
			log.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close: %v", err)
	}
	fmt.Printf("wrote %d alternatives to %s\n", *rows, *out)

	if *apiURL == "" {
		return
	}
	if err := submit(*apiURL, *out, *weights, *impacts, *email); err != nil {
		log.Fatalf("submit: %v", err)
	}
}

func submit(apiURL, path, weights, impacts, email string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", path)
	if err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, src); err != nil {
		src.Close()
		return err
	}
	src.Close()

	_ = mw.WriteField("weights", weights)
	_ = mw.WriteField("impacts", impacts)
	if email != "" {
		_ = mw.WriteField("email", email)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	resp, err := http.Post(apiURL+"/api/v1/rankings", mw.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var run struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(body, &run); err != nil {
		return err
	}
	fmt.Printf("submitted run %s\n", run.RunID)
	return nil
}
