package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:3000"
	rps        = 5
	duration   = 1 * time.Minute
)

type EmployeeCreateRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Puesto   string `json:"puesto"`
}

var (
	employeeIDs []string
	httpc       = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, map[string]interface{}, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating employees...")

	puestos := []string{"Dev", "QA", "Ops", "Manager", "Designer"}

	for i := 1; i <= 50; i++ {
		req := EmployeeCreateRequest{
			Nombre:   fmt.Sprintf("Empleado%02d", i),
			Apellido: fmt.Sprintf("Apellido%02d", i),
			Puesto:   puestos[i%len(puestos)],
		}

		status, body, err := postJSON(targetHost+"/api/empleados", req)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN POST /api/empleados returned %d\n", status)
			continue
		}

		if data, ok := body["data"].(map[string]interface{}); ok {
			employeeIDs = append(employeeIDs, fmt.Sprintf("%v", data["id"]))
		}
		time.Sleep(20 * time.Millisecond)
	}

	log.Printf("Seed completed: employees=%d\n", len(employeeIDs))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 50% GET списка
		if r < 0.50 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/api/empleados"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 40% GET одного сотрудника
		if r < 0.90 {
			id := employeeIDs[rand.Intn(len(employeeIDs))]
			t.Method = http.MethodGet
			t.URL = targetHost + "/api/empleados/" + id
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 8% PUT обновление должности
		if r < 0.98 {
			id := employeeIDs[rand.Intn(len(employeeIDs))]
			body, _ := json.Marshal(map[string]string{"puesto": "Load Tester"})
			t.Method = http.MethodPut
			t.URL = targetHost + "/api/empleados/" + id
			t.Body = body
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			return nil
		}

		// 2% POST создание
		body, _ := json.Marshal(EmployeeCreateRequest{
			Nombre:   fmt.Sprintf("Load%d", time.Now().UnixNano()),
			Apellido: "Test",
			Puesto:   "Dev",
		})
		t.Method = http.MethodPost
		t.URL = targetHost + "/api/empleados"
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	if len(employeeIDs) == 0 {
		log.Fatal("Seed produced no employees")
	}

	runAttack()
}
