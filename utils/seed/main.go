// Command seed loads businesses, and their reviews, from a YAML file into a
// running API through its HTTP endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Review struct {
	UserID     int     `yaml:"user_id" json:"user_id"`
	BusinessID int     `yaml:"-" json:"business_id"`
	Stars      int     `yaml:"stars" json:"stars"`
	ReviewText *string `yaml:"review_text" json:"review_text,omitempty"`
}

type Business struct {
	OwnerID       int      `yaml:"owner_id" json:"owner_id"`
	Name          string   `yaml:"name" json:"name"`
	StreetAddress string   `yaml:"street_address" json:"street_address"`
	City          string   `yaml:"city" json:"city"`
	State         string   `yaml:"state" json:"state"`
	ZipCode       int      `yaml:"zip_code" json:"zip_code"`
	Reviews       []Review `yaml:"reviews" json:"-"`
}

func main() {
	apiBase := flag.String("api", "http://localhost:8080", "API base URL")
	path := flag.String("file", "seed/businesses.yml", "YAML seed file")
	flag.Parse()

	businesses, err := loadSeed(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *path, err)
		os.Exit(1)
	}
	if len(businesses) == 0 {
		fmt.Println("Nothing to seed.")
		return
	}

	cli := &http.Client{Timeout: 15 * time.Second}
	if failed := seed(cli, strings.TrimRight(*apiBase, "/"), businesses, os.Stdout, os.Stderr); failed {
		os.Exit(2)
	}
}

// seed creates every business and then its reviews. It reports whether any
// request failed; a failed business skips its reviews.
func seed(cli *http.Client, apiBase string, businesses []Business, out, errOut io.Writer) bool {
	var anyFailed bool
	for _, b := range businesses {
		if b.Name == "" || b.State == "" {
			fmt.Fprintf(errOut, "Skipping incomplete entry: %+v\n", b)
			continue
		}
		var created struct {
			ID int `json:"id"`
		}
		if err := post(cli, apiBase+"/businesses", b, &created); err != nil {
			anyFailed = true
			fmt.Fprintf(errOut, "Failed to add %s: %v\n", b.Name, err)
			continue
		}
		fmt.Fprintf(out, "Added business %d (%s)\n", created.ID, b.Name)

		for _, r := range b.Reviews {
			r.BusinessID = created.ID
			var rc struct {
				ID int `json:"id"`
			}
			if err := post(cli, apiBase+"/reviews", r, &rc); err != nil {
				anyFailed = true
				fmt.Fprintf(errOut, "Failed to add review by user %d for %s: %v\n", r.UserID, b.Name, err)
				continue
			}
			fmt.Fprintf(out, "  Added review %d by user %d\n", rc.ID, r.UserID)
		}
	}
	return anyFailed
}

func post(cli *http.Client, url string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := cli.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// loadSeed accepts either a bare list or {businesses: [...]}.
func loadSeed(path string) ([]Business, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list []Business
	if err := yaml.Unmarshal(b, &list); err == nil {
		return list, nil
	}
	var doc struct {
		Businesses []Business `yaml:"businesses"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc.Businesses, nil
}
