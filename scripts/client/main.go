package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type signalInput struct {
	DeviceID string `json:"deviceId"`
	Data     []any  `json:"data"`
	Time     int64  `json:"time"`
}

type storedSignal struct {
	ID       string `json:"id"`
	DeviceID string `json:"deviceId"`
	Time     int64  `json:"time"`
}

func main() {
	baseURL := "http://localhost:8080"
	now := time.Now().UnixMilli()

	// 1. POST /signals
	payload, _ := json.Marshal(struct {
		Signals []signalInput `json:"signals"`
	}{Signals: []signalInput{
		{DeviceID: "client-dev", Data: []any{[]any{0, []float64{1, 2, 3}}}, Time: now},
		{DeviceID: "client-dev", Data: []any{[]any{10, []float64{4, 5, 6}}}, Time: now + 10_000},
	}})
	fmt.Println("Payload:", string(payload))
	resp, err := http.Post(baseURL+"/signals", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	fmt.Println("POST /signals status:", resp.Status)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		fmt.Println("POST response body:", string(body))
		return
	}
	var created struct {
		Data []storedSignal `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		panic(err)
	}

	// 2. GET /signals?deviceId=...&startTime=...&endTime=...
	getURL := fmt.Sprintf("%s/signals?deviceId=client-dev&startTime=%d&endTime=%d", baseURL, now-3_600_000, now+3_600_000)
	resp, err = http.Get(getURL)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	var page struct {
		Data  []storedSignal `json:"data"`
		Total int            `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		panic(err)
	}
	fmt.Println("GET /signals result:", page.Total, page.Data)

	// 3. DELETE /signals
	ids := make([]string, 0, len(created.Data))
	for _, s := range created.Data {
		ids = append(ids, s.ID)
	}
	body, _ := json.Marshal(map[string]any{"ids": ids})
	req, _ := http.NewRequest(http.MethodDelete, baseURL+"/signals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	fmt.Println("DELETE /signals:", resp.Status, string(out))
}
