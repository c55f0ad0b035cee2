package router

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestEmployeeCRUD(t *testing.T) {
	_, db, r := newTestEnv(t)
	register(t, r, "boss", "The Boss", "bosspass", "admin")
	token := login(t, r, "boss", "bosspass")

	// create
	resp := doRequest(t, r, http.MethodPost, "/api/employees", token, map[string]string{
		"username": "newhire",
		"fullName": "New Hire",
		"password": "hirepass",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.Code)
	}
	var created struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	}
	decodeBody(t, resp, &created)
	if created.Role != "employee" {
		t.Errorf("created role = %q, want employee", created.Role)
	}

	// duplicate username
	resp = doRequest(t, r, http.MethodPost, "/api/employees", token, map[string]string{
		"username": "newhire",
		"fullName": "Other Hire",
		"password": "otherpass",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409", resp.Code)
	}

	// list
	resp = doRequest(t, r, http.MethodGet, "/api/employees", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.Code)
	}
	var list []struct {
		Username string `json:"username"`
	}
	decodeBody(t, resp, &list)
	if len(list) != 2 {
		t.Errorf("list has %d employees, want 2", len(list))
	}

	// get with sessions
	insertSession(t, db, created.ID, time.Now().Add(-time.Hour), nil)
	resp = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.Code)
	}
	var detail struct {
		Username string        `json:"username"`
		Sessions []sessionResp `json:"sessions"`
	}
	decodeBody(t, resp, &detail)
	if detail.Username != "newhire" || len(detail.Sessions) != 1 {
		t.Errorf("get returned %q with %d sessions", detail.Username, len(detail.Sessions))
	}

	// update name and role only
	resp = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), token, map[string]string{
		"fullName": "Promoted Hire",
		"role":     "admin",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.Code)
	}
	var updated struct {
		FullName string `json:"fullName"`
		Role     string `json:"role"`
		Username string `json:"username"`
	}
	decodeBody(t, resp, &updated)
	if updated.FullName != "Promoted Hire" || updated.Role != "admin" {
		t.Errorf("update returned %+v", updated)
	}
	if updated.Username != "newhire" {
		t.Errorf("username changed on update: %q", updated.Username)
	}

	// delete
	resp = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/employees/%d", created.ID), token, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.Code)
	}
	resp = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", resp.Code)
	}
}

func TestEmployeeMutationForbiddenForNonAdmin(t *testing.T) {
	_, _, r := newTestEnv(t)
	targetID := register(t, r, "victim", "Victim", "victimpass", "")
	register(t, r, "plain", "Plain Employee", "plainpass", "")
	token := login(t, r, "plain", "plainpass")

	resp := doRequest(t, r, http.MethodPost, "/api/employees", token, map[string]string{
		"username": "sneaky",
		"fullName": "Sneaky",
		"password": "sneakypass",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("create status = %d, want 403", resp.Code)
	}

	resp = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/employees/%d", targetID), token, map[string]string{
		"fullName": "Hacked",
	})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("update status = %d, want 403", resp.Code)
	}

	resp = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/employees/%d", targetID), token, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("delete status = %d, want 403", resp.Code)
	}

	// reads are allowed for any authenticated employee
	resp = doRequest(t, r, http.MethodGet, "/api/employees", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.Code)
	}
}

func TestEmployeeUpdateNotFound(t *testing.T) {
	_, _, r := newTestEnv(t)
	register(t, r, "boss", "The Boss", "bosspass", "admin")
	token := login(t, r, "boss", "bosspass")

	resp := doRequest(t, r, http.MethodPut, "/api/employees/9999", token, map[string]string{
		"fullName": "Ghost",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	resp = doRequest(t, r, http.MethodDelete, "/api/employees/9999", token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("delete status = %d, want 404", resp.Code)
	}
}
