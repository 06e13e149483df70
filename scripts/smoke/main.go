// Command smoke exercises a running API instance against a list of
// endpoint targets and fails when a critical endpoint misbehaves.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Expect   int    `json:"expect"`
	Auth     bool   `json:"auth"`
	Critical bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type check struct {
	Target   target
	Status   int
	Pass     bool
	Error    error
	Duration time.Duration
}

func main() {
	var (
		base        string
		targetsPath string
		username    string
		password    string
		role        string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "smoke", "targets.json"), "Path to JSON targets file")
	flag.StringVar(&username, "username", "admin", "Login username for authenticated targets")
	flag.StringVar(&password, "password", "admin123", "Login password for authenticated targets")
	flag.StringVar(&role, "role", "admin", "Login role for authenticated targets")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}

	token := ""
	if needsAuth(targets) {
		token, err = login(client, base, username, password, role)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	var (
		checks   []check
		breaking int
		soft     int
	)

	for _, t := range targets {
		c := performCheck(client, base, token, t)
		if !c.Pass {
			if t.Critical {
				breaking++
			} else {
				soft++
			}
		}
		checks = append(checks, c)
	}

	printReport(checks)

	fmt.Printf("Critical failures: %d, Soft failures: %d\n", breaking, soft)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func needsAuth(targets []target) bool {
	for _, t := range targets {
		if t.Auth {
			return true
		}
	}
	return false
}

func login(client *http.Client, base, username, password, role string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(base, "/") + "/api/v1/auth/login"
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", err
	}
	if envelope.Data.AccessToken == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return envelope.Data.AccessToken, nil
}

func performCheck(client *http.Client, base, token string, tgt target) check {
	c := check{Target: tgt}

	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		c.Error = err
		return c
	}
	if tgt.Auth && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	c.Duration = time.Since(start)
	if err != nil {
		c.Error = err
		return c
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	expect := tgt.Expect
	if expect == 0 {
		expect = http.StatusOK
	}
	c.Status = resp.StatusCode
	c.Pass = c.Status == expect

	return c
}

func printReport(results []check) {
	fmt.Println("Smoke Check Report")
	fmt.Println("==================")
	for _, res := range results {
		status := "PASS"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.Pass {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Status: %d (%s) | Critical: %t\n", res.Status, res.Duration, res.Target.Critical)
	}
}
