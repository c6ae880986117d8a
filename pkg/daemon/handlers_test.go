package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/device"
	"github.com/simcoaches/trackpro/pkg/engine"
	"github.com/simcoaches/trackpro/pkg/events"
	"github.com/simcoaches/trackpro/pkg/store"
)

// setupTestDaemon wires the package-level daemon state over an in-memory
// store and a scripted device, primed with one sample.
func setupTestDaemon(t *testing.T, src device.Source) *gin.Engine {
	t.Helper()

	var err error
	dir := t.TempDir()
	conf, err = config.NewFile(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("config.NewFile: %v", err)
	}
	names, err = store.NewNames(filepath.Join(dir, "names.json"))
	if err != nil {
		t.Fatalf("store.NewNames: %v", err)
	}
	hub = events.NewHub()
	wsHub = NewWSHub()

	eng = engine.New(store.NewMemory(store.HubNotifier{Hub: hub}), src, hub)
	if src != nil {
		if err := eng.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	return setupRoutes()
}

func testSource() *device.Mock {
	return device.NewMock(device.MockStep{Sample: device.Sample{X: 440, Z: 2048, RY: 3790}})
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStatus(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "GET", "/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /status = %d, want 200", w.Code)
	}

	var st engine.Status
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if !st.DeviceAvailable {
		t.Error("DeviceAvailable = false, want true")
	}
	if st.Raw.X != 440 {
		t.Errorf("Raw.X = %d, want 440", st.Raw.X)
	}
	if st.Calibrated {
		t.Error("Calibrated = true before any set-max")
	}
}

func TestSetMinAndMax(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "POST", "/axes/X/min", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /axes/X/min = %d, want 201: %s", w.Code, w.Body.String())
	}

	var res engine.OpResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.Ranges.X.Min != 440 {
		t.Errorf("Ranges.X.Min = %d, want 440", res.Ranges.X.Min)
	}
	if res.Calibrated {
		t.Error("Calibrated = true after set-min only")
	}

	// Lowercase axis names are accepted too.
	w = do(t, router, "POST", "/axes/x/max", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /axes/x/max = %d, want 201: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.Calibrated {
		t.Error("Calibrated = false after set-max")
	}
}

func TestSetMinUnknownAxis(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "POST", "/axes/w/min", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /axes/w/min = %d, want 400", w.Code)
	}
}

func TestSetMinNoDevice(t *testing.T) {
	router := setupTestDaemon(t, nil)

	w := do(t, router, "POST", "/axes/X/min", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("POST /axes/X/min without device = %d, want 503", w.Code)
	}
}

func TestValidateDefaults(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "GET", "/axes/Z/validate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /axes/Z/validate = %d, want 200", w.Code)
	}

	var out struct {
		Axis   string `json:"axis"`
		Valid  bool   `json:"valid"`
		Narrow bool   `json:"narrow"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Valid || out.Narrow {
		t.Errorf("default range reported valid=%t narrow=%t, want valid wide range", out.Valid, out.Narrow)
	}
}

func TestAxisNames(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "GET", "/axes/RY/name", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET name = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `"RY-Axis"` {
		t.Errorf("default name = %s, want \"RY-Axis\"", got)
	}

	w = do(t, router, "PUT", "/axes/RY/name", "Handbrake")
	if w.Code != http.StatusCreated {
		t.Fatalf("PUT name = %d, want 201: %s", w.Code, w.Body.String())
	}

	w = do(t, router, "GET", "/axes/RY/name", "")
	if got := strings.TrimSpace(w.Body.String()); got != `"Handbrake"` {
		t.Errorf("renamed axis = %s, want \"Handbrake\"", got)
	}
}

func TestGetSamples(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "GET", "/samples/Z", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /samples/Z = %d, want 200", w.Code)
	}

	var out struct {
		Axis   string    `json:"axis"`
		Scale  string    `json:"scale"`
		Values []float64 `json:"values"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Scale != "raw" {
		t.Errorf("scale = %q, want raw before calibration", out.Scale)
	}
	if len(out.Values) != 1 || out.Values[0] != 2048 {
		t.Errorf("values = %v, want [2048]", out.Values)
	}
}

func TestGetVersion(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	w := do(t, router, "GET", "/version", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /version = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"`) {
		t.Errorf("version body %q is not a JSON string", w.Body.String())
	}
}

func TestResetAndRestore(t *testing.T) {
	router := setupTestDaemon(t, testSource())

	// Calibrate X, then wipe defaults back with a backup.
	if w := do(t, router, "POST", "/axes/X/min", ""); w.Code != http.StatusCreated {
		t.Fatalf("set-min = %d", w.Code)
	}
	if w := do(t, router, "POST", "/axes/X/max", ""); w.Code != http.StatusCreated {
		t.Fatalf("set-max = %d", w.Code)
	}

	w := do(t, router, "POST", "/restore-defaults", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("restore-defaults = %d, want 201", w.Code)
	}
	var res engine.OpResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Ranges.X.Min != 0 || res.Ranges.X.Max != 4095 {
		t.Errorf("after restore-defaults X = %+v, want factory range", res.Ranges.X)
	}

	w = do(t, router, "POST", "/restore-last", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("restore-last = %d, want 201", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Ranges.X.Min != 440 {
		t.Errorf("after restore-last X.Min = %d, want 440", res.Ranges.X.Min)
	}
}
