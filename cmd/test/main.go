package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	testType := flag.String("test", "all", "Test type: all, health, index, advice, weather, market, calendar, soil, analyze, custom")
	query := flag.String("query", "", "Question for the custom test")
	crop := flag.String("crop", "", "Crop for the custom test")
	location := flag.String("location", "", "Location for the custom test")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("AgriGuru Farming Expert API - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	tests := map[string]func() bool{
		"health":   client.testHealthCheck,
		"index":    client.testIndex,
		"advice":   client.testExpertAdvice,
		"weather":  client.testWeatherAdvice,
		"market":   client.testMarketInsights,
		"calendar": client.testSeasonalCalendar,
		"soil":     client.testSoilRecommendations,
		"analyze":  client.testAnalyzeCrop,
	}

	switch *testType {
	case "all":
		client.runAllTests()
	case "custom":
		if *query == "" {
			printError("Query is required for custom test. Use -query flag")
			os.Exit(1)
		}
		if !client.testCustomAdvice(*query, *crop, *location) {
			os.Exit(1)
		}
	default:
		fn, ok := tests[*testType]
		if !ok {
			printError(fmt.Sprintf("Unknown test type: %s", *testType))
			fmt.Println("\nAvailable tests: all, health, index, advice, weather, market, calendar, soil, analyze, custom")
			os.Exit(1)
		}
		if !fn() {
			os.Exit(1)
		}
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Index", tc.testIndex},
		{"Expert Advice", tc.testExpertAdvice},
		{"Missing Query", tc.testMissingQuery},
		{"Weather Advice", tc.testWeatherAdvice},
		{"Market Insights", tc.testMarketInsights},
		{"Seasonal Calendar", tc.testSeasonalCalendar},
		{"Soil Recommendations", tc.testSoilRecommendations},
		{"Analyze Crop", tc.testAnalyzeCrop},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	status, body, ok := tc.get("/health")
	if !ok {
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testIndex() bool {
	printTestHeader("Testing Index Endpoint")

	result, ok := tc.getJSON("/")
	if !ok {
		return false
	}
	if !requireFields(result, "message", "status", "endpoints", "features") {
		return false
	}
	if endpoints, _ := result["endpoints"].([]interface{}); len(endpoints) != 6 {
		printError(fmt.Sprintf("Expected 6 endpoints, got %d", len(endpoints)))
		return false
	}

	printSuccess("Index is valid")
	return true
}

func (tc *TestClient) testExpertAdvice() bool {
	return tc.testCustomAdvice("How to plant rice?", "rice", "")
}

func (tc *TestClient) testCustomAdvice(query, crop, location string) bool {
	printTestHeader("Testing Expert Advice")
	fmt.Printf("%sQuery:%s %s\n\n", colorCyan, colorReset, query)

	request := map[string]interface{}{"query": query}
	if crop != "" {
		request["crop"] = crop
	}
	if location != "" {
		request["location"] = location
	}

	result, ok := tc.postJSON("/api/expert-advice", request, http.StatusOK)
	if !ok || !requireFields(result, "advice", "context", "success") {
		return false
	}

	printSuccess("Expert advice generated")
	printAdvice(result["advice"])
	return true
}

func (tc *TestClient) testMissingQuery() bool {
	printTestHeader("Testing Expert Advice Without Query")

	result, ok := tc.postJSON("/api/expert-advice", map[string]interface{}{}, http.StatusBadRequest)
	if !ok || !requireFields(result, "error") {
		return false
	}

	printSuccess(fmt.Sprintf("Rejected with: %v", result["error"]))
	return true
}

func (tc *TestClient) testWeatherAdvice() bool {
	printTestHeader("Testing Weather Advice")

	result, ok := tc.postJSON("/api/weather-advice", map[string]interface{}{"location": "Delhi", "crop": "wheat"}, http.StatusOK)
	if !ok || !requireFields(result, "weather_data", "soil_data", "advice", "location", "success") {
		return false
	}

	printSuccess("Weather advice generated")
	printAdvice(result["advice"])
	return true
}

func (tc *TestClient) testMarketInsights() bool {
	printTestHeader("Testing Market Insights")

	result, ok := tc.getJSON("/api/market-insights?crop=wheat")
	if !ok || !requireFields(result, "market_data", "advice", "crop", "success") {
		return false
	}

	printSuccess("Market insights returned")
	data, _ := json.MarshalIndent(result["market_data"], "", "  ")
	printJSON(data)
	return true
}

func (tc *TestClient) testSeasonalCalendar() bool {
	printTestHeader("Testing Seasonal Calendar")

	result, ok := tc.getJSON("/api/seasonal-calendar?season=rabi")
	if !ok || !requireFields(result, "seasonal_advice", "season", "location", "success") {
		return false
	}

	printSuccess("Seasonal calendar returned")
	printAdvice(result["seasonal_advice"])
	return true
}

func (tc *TestClient) testSoilRecommendations() bool {
	printTestHeader("Testing Soil Recommendations")

	result, ok := tc.getJSON("/api/soil-recommendations?location=punjab")
	if !ok || !requireFields(result, "soil_data", "advice", "location", "success") {
		return false
	}

	soil, _ := result["soil_data"].(map[string]interface{})
	if soil["dominant_soil"] != "alluvial" {
		printError(fmt.Sprintf("Expected dominant_soil 'alluvial', got '%v'", soil["dominant_soil"]))
		return false
	}

	printSuccess("Soil recommendations returned")
	printAdvice(result["advice"])
	return true
}

func (tc *TestClient) testAnalyzeCrop() bool {
	printTestHeader("Testing Crop Analysis")

	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		printError(fmt.Sprintf("Failed to build test image: %v", err))
		return false
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("image", "leaf.png")
	part.Write(img.Bytes())
	w.WriteField("crop_type", "rice")
	w.Close()

	url := tc.baseURL + "/api/analyze-crop"
	fmt.Printf("POST %s\n", url)

	resp, err := tc.client.Post(url, w.FormDataContentType(), &body)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	result, ok := decodeResponse(resp, http.StatusOK)
	if !ok || !requireFields(result, "disease_analysis", "expert_advice", "crop_type", "success") {
		return false
	}

	analysis, _ := json.MarshalIndent(result["disease_analysis"], "", "  ")
	printSuccess("Crop analysed")
	printJSON(analysis)
	return true
}

func (tc *TestClient) get(path string) (int, []byte, bool) {
	url := tc.baseURL + path
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return 0, nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, true
}

func (tc *TestClient) getJSON(path string) (map[string]interface{}, bool) {
	url := tc.baseURL + path
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK)
}

func (tc *TestClient) postJSON(path string, payload map[string]interface{}, wantStatus int) (map[string]interface{}, bool) {
	url := tc.baseURL + path
	fmt.Printf("POST %s\n", url)

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Printf("%sRequest:%s\n%s\n\n", colorYellow, colorReset, string(jsonData))

	resp, err := tc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	return decodeResponse(resp, wantStatus)
}

func decodeResponse(resp *http.Response, wantStatus int) (map[string]interface{}, bool) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		printError(fmt.Sprintf("Expected status %d, got %d", wantStatus, resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return nil, false
	}
	return result, true
}

func requireFields(result map[string]interface{}, fields ...string) bool {
	for _, field := range fields {
		if _, ok := result[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}
	return true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printAdvice(advice interface{}) {
	text, _ := advice.(string)
	fmt.Printf("\n%sAdvice:%s\n", colorPurple, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 80))
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
