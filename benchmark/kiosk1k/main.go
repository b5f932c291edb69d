package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxThermometers int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var sectors = []string{"Cozinha", "Padaria", "Açougue", "Frios", "Hortifruti"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	thermometerIDs := make([]uint, maxThermometers)
	wg := sync.WaitGroup{}
	for i := 0; i < maxThermometers; i++ {
		i := i
		wg.Add(1)
		go func() {
			thermometerIDs[i] = createThermometer()
			fmt.Printf("\rcreated thermometer %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v thermometers: used time=%v seconds, throughput=%v action/second\n",
		maxThermometers, usedTime.Seconds(), float64(maxThermometers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxThermometers; i++ {
		i := i
		wg.Add(1)
		go func() {
			doDailyCycle(thermometerIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rran daily cycle for %v thermometers: used time=%v seconds, throughput=%v action/second\n",
		maxThermometers, usedTime.Seconds(), float64(maxThermometers*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postJSON(url string, payload any) *http.Response {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator", "kiosk1k")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func createThermometer() uint {
	payload := map[string]string{
		"sector":    sectors[rnd.Intn(len(sectors))],
		"equipment": fmt.Sprintf("Freezer %v", rnd.Intn(100)),
		"tag":       "TAG-" + uuid.NewString(),
	}

	resp := postJSON(fmt.Sprintf("http://%s/thermometers", httpHostPort), payload)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		panic(fmt.Sprintf("create thermometer failed: %v %s", resp.StatusCode, body))
	}

	var thermometer struct {
		ID uint `json:"ID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&thermometer); err != nil {
		panic(err)
	}
	return thermometer.ID
}

// doDailyCycle replays one civil day of kiosk traffic: the morning
// submission, the end-of-day amend, then a dashboard poll.
func doDailyCycle(thermometerID uint) {
	current := rndFloat64(-20.0, 10.0, 1)

	resp := postJSON(
		fmt.Sprintf("http://%s/thermometers/%v/verifications", httpHostPort, thermometerID),
		map[string]any{"current": current},
	)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		fmt.Printf("\nsubmission rejected: %v\n", resp.StatusCode)
	}

	time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)

	resp = postJSON(
		fmt.Sprintf("http://%s/thermometers/%v/verifications", httpHostPort, thermometerID),
		map[string]any{
			"max": current + rndFloat64(0.0, 5.0, 1),
			"min": current - rndFloat64(0.0, 5.0, 1),
		},
	)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\namend rejected: %v\n", resp.StatusCode)
	}

	time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)

	alertsResp, err := http.Get(fmt.Sprintf("http://%s/alerts", httpHostPort))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer alertsResp.Body.Close()
	if alertsResp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", alertsResp)
	}
}
