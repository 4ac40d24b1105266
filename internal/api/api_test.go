package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/khata/internal/message"
	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage/sqlite"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	server := httptest.NewServer(New(store, message.NewBuilder("", nil)).Routes())
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return server
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, data
}

func addTestPerson(t *testing.T, server *httptest.Server, name, amount string) *models.Person {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"openingAmount":%s,"type":"taken","mobileNumber":"9876543210","description":"Rent"}`, name, amount)
	resp, data := doJSON(t, http.MethodPost, server.URL+"/api/people", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add person: status %d, body %s", resp.StatusCode, data)
	}

	var person models.Person
	if err := json.Unmarshal(data, &person); err != nil {
		t.Fatalf("failed to decode person: %v", err)
	}
	return &person
}

func TestAddAndGetPerson(t *testing.T) {
	server := setupTestServer(t)

	person := addTestPerson(t, server, "Alice", "500")
	if person.ID == "" {
		t.Fatal("expected person id")
	}
	if person.Balance.String() != "500" {
		t.Errorf("balance = %s, want 500", person.Balance)
	}

	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get person: status %d", resp.StatusCode)
	}
	var got models.Person
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to decode person: %v", err)
	}
	if got.Name != "Alice" || !got.Balance.Equal(person.Balance) {
		t.Errorf("unexpected person: %+v", got)
	}
}

func TestAddPersonValidation(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","openingAmount":10,"type":"taken","mobileNumber":"9","description":"x"}`},
		{"negative opening", `{"name":"A","openingAmount":-10,"type":"taken","mobileNumber":"9","description":"x"}`},
		{"bad type", `{"name":"A","openingAmount":10,"type":"loan","mobileNumber":"9","description":"x"}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestGetPersonNotFound(t *testing.T) {
	server := setupTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/people/nonexistent-id", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRecordAndListTransactions(t *testing.T) {
	server := setupTestServer(t)
	person := addTestPerson(t, server, "Alice", "500")

	resp, data := doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/received", `{"amount":200}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("record received: status %d, body %s", resp.StatusCode, data)
	}

	var recorded struct {
		Person      models.Person      `json:"person"`
		Transaction models.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &recorded); err != nil {
		t.Fatalf("failed to decode record response: %v", err)
	}
	if recorded.Person.Balance.String() != "300" {
		t.Errorf("balance = %s, want 300", recorded.Person.Balance)
	}
	if recorded.Transaction.RunningBalance.String() != "300" {
		t.Errorf("running balance = %s, want 300", recorded.Transaction.RunningBalance)
	}

	resp, data = doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/taken", `{"amount":50}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("record taken: status %d, body %s", resp.StatusCode, data)
	}

	resp, data = doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID+"/transactions", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list transactions: status %d", resp.StatusCode)
	}
	var listed struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode transactions: %v", err)
	}
	if len(listed.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(listed.Transactions))
	}
	if listed.Transactions[0].Type != models.TypeTaken {
		t.Errorf("newest transaction type = %s, want taken", listed.Transactions[0].Type)
	}

	t.Run("zero amount rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/taken", `{"amount":0}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("unknown person rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people/nonexistent-id/taken", `{"amount":5}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestDeletePersonCascades(t *testing.T) {
	server := setupTestServer(t)
	person := addTestPerson(t, server, "Alice", "500")

	if resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/taken", `{"amount":10}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("record taken: status %d", resp.StatusCode)
	}

	resp, _ := doJSON(t, http.MethodDelete, server.URL+"/api/people/"+person.ID, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete person: status %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("deleted person still retrievable: status %d", resp.StatusCode)
	}
}

func TestReminderEndpoint(t *testing.T) {
	server := setupTestServer(t)
	person := addTestPerson(t, server, "Alice", "350")

	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID+"/reminder", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reminder: status %d", resp.StatusCode)
	}

	var reminder struct {
		Message     string `json:"message"`
		CopyText    string `json:"copyText"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	if err := json.Unmarshal(data, &reminder); err != nil {
		t.Fatalf("failed to decode reminder: %v", err)
	}

	if !strings.Contains(reminder.Message, "₹350.00") || !strings.Contains(reminder.Message, "My Shop") {
		t.Errorf("unexpected reminder: %q", reminder.Message)
	}
	if !strings.HasPrefix(reminder.WhatsAppURL, "https://wa.me/919876543210?text=") {
		t.Errorf("unexpected wa.me link: %q", reminder.WhatsAppURL)
	}
	if !strings.Contains(reminder.CopyText, "Rent") {
		t.Errorf("unexpected copy text: %q", reminder.CopyText)
	}
}

func TestHistoryEndpointRequiresTransactions(t *testing.T) {
	server := setupTestServer(t)
	person := addTestPerson(t, server, "Alice", "350")

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID+"/history", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("history with no transactions: status %d, want 404", resp.StatusCode)
	}

	if resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/taken", `{"amount":10}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("record taken: status %d", resp.StatusCode)
	}

	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/people/"+person.ID+"/history", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: status %d", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte("Last 1 Transactions")) {
		t.Errorf("unexpected history body: %s", data)
	}
}

func TestBackupAndRestore(t *testing.T) {
	server := setupTestServer(t)
	person := addTestPerson(t, server, "Alice", "500")
	if resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/people/"+person.ID+"/taken", `{"amount":25}`); resp.StatusCode != http.StatusCreated {
		t.Fatalf("record taken failed")
	}

	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/backup", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("backup: status %d", resp.StatusCode)
	}
	if disposition := resp.Header.Get("Content-Disposition"); !strings.Contains(disposition, "khata-backup.json") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}

	var backup models.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		t.Fatalf("backup does not parse: %v", err)
	}
	if backup.Version != "1.0" || len(backup.People) != 1 || len(backup.Transactions) != 1 {
		t.Errorf("unexpected backup: version=%s people=%d transactions=%d",
			backup.Version, len(backup.People), len(backup.Transactions))
	}

	// Mutate, then restore the snapshot: the mutation must vanish.
	addTestPerson(t, server, "Bob", "10")

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/restore", string(data))
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("restore: status %d", resp.StatusCode)
	}

	resp, data = doJSON(t, http.MethodGet, server.URL+"/api/people", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list people: status %d", resp.StatusCode)
	}
	var listed struct {
		People []models.Person `json:"people"`
	}
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode people: %v", err)
	}
	if len(listed.People) != 1 || listed.People[0].Name != "Alice" {
		t.Errorf("restore did not replace live data: %+v", listed.People)
	}
}

func TestRestoreRejectsInvalidDocument(t *testing.T) {
	server := setupTestServer(t)
	addTestPerson(t, server, "Alice", "500")

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/restore", `{"version":"1.0","transactions":[]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("restore invalid doc: status %d, want 422", resp.StatusCode)
	}

	// Existing data untouched.
	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/people", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list people: status %d", resp.StatusCode)
	}
	var listed struct {
		People []models.Person `json:"people"`
	}
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode people: %v", err)
	}
	if len(listed.People) != 1 {
		t.Errorf("people = %d, want 1", len(listed.People))
	}
}

func TestRestoreRejectsOversizedDocument(t *testing.T) {
	server := setupTestServer(t)

	body := strings.Repeat(" ", maxRestoreBytes+1)
	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/restore", body)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("restore oversized doc: status %d, want 413", resp.StatusCode)
	}
}

func TestShopSettingsEndpoints(t *testing.T) {
	server := setupTestServer(t)

	resp, data := doJSON(t, http.MethodGet, server.URL+"/api/settings/shop", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get shop name: status %d", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte("My Shop")) {
		t.Errorf("expected default shop name, got %s", data)
	}

	resp, _ = doJSON(t, http.MethodPut, server.URL+"/api/settings/shop", `{"shopName":"Gupta Kirana"}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("set shop name: status %d", resp.StatusCode)
	}

	resp, data = doJSON(t, http.MethodGet, server.URL+"/api/settings/shop", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get shop name: status %d", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte("Gupta Kirana")) {
		t.Errorf("expected updated shop name, got %s", data)
	}
}

func TestHealthz(t *testing.T) {
	server := setupTestServer(t)

	resp, data := doJSON(t, http.MethodGet, server.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: status %d", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte("ok")) {
		t.Errorf("unexpected healthz body: %s", data)
	}
}
