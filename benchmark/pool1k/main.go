package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxDevices int = 1000
var poolSize int = 50
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

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
	deviceIDs := make([]string, maxDevices)
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			deviceIDs[i] = createDevice()
			fmt.Printf("\rcreated device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	poolCount := maxDevices / poolSize
	poolIDs := make([]string, poolCount)
	for p := range poolCount {
		poolIDs[p] = createPool()
		addMembers(poolIDs[p], deviceIDs[p*poolSize:(p+1)*poolSize])
		fmt.Printf("\rfilled pool %v with %v members", p, poolSize)
	}
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rfilled %v pools of %v members: used time=%v seconds\n",
		poolCount, poolSize, usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for p := range poolCount {
		wg.Add(1)
		go func() {
			doAction(poolIDs[p])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v pools: used time=%v seconds, throughput=%v action/second\n",
		poolCount, usedTime.Seconds(), float64(poolCount*3*poolSize)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func postJSON(path string, payload any) []byte {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		panic(fmt.Sprintf("POST %s failed: %v %s", path, resp.StatusCode, body))
	}
	return body
}

func createDevice() string {
	body := postJSON("/device", map[string]any{
		"device_type": "lamp",
		"device_properties": map[string]any{
			"host":        "127.0.0.1",
			"port":        int(10000 + rnd.Int31n(50000)),
			"update_time": 0,
		},
	})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		panic(err)
	}
	return created.ID
}

func createPool() string {
	body := postJSON("/device_pool", map[string]string{"device_type": "lamp"})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		panic(err)
	}
	return created.ID
}

func addMembers(poolID string, memberIDs []string) {
	jsonData, _ := json.Marshal(map[string]any{
		"device_properties": map[string]any{"add": memberIDs},
	})
	req, _ := http.NewRequest(http.MethodPatch,
		fmt.Sprintf("http://%s/device_pool/%s", httpHostPort, poolID), bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		panic(fmt.Sprintf("PATCH pool %s failed: %v %s", poolID, resp.StatusCode, body))
	}
}

func doAction(poolID string) {
	actions := []func(){
		genExecuteAction(poolID),
		genLifecycleAction(poolID),
		genGetMetricsAction(poolID),
	}
	actionNames := []string{
		"Execute",
		"Lifecycle",
		"GetMetrics",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for pool %v", actionNames[index], poolID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genExecuteAction(poolID string) func() {
	return func() {
		state := "on"
		if flipCoin() {
			state = "off"
		}
		postJSON(fmt.Sprintf("/device/%s/execute", poolID), map[string]string{"state": state})
	}
}

func genLifecycleAction(poolID string) func() {
	return func() {
		// reboot keeps every member connected so later actions still apply
		postJSON(fmt.Sprintf("/device/%s/reboot", poolID), nil)
	}
}

func genGetMetricsAction(poolID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/device/%s/metrics", httpHostPort, poolID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
