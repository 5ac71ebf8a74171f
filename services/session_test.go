package services

import (
	"strings"
	"testing"

	"natulang/models"
)

func TestSessionStoreCreateSession(t *testing.T) {
	store := NewSessionStore()

	id := store.CreateSession()
	if !strings.HasPrefix(id, "sess-") || len(id) != len("sess-")+8 {
		t.Errorf("Unexpected session id format: %q", id)
	}

	other := store.CreateSession()
	if other == id {
		t.Error("Session ids must be unique")
	}

	if history := store.History(id); len(history) != 0 {
		t.Errorf("New session should have empty history, got %v", history)
	}
}

func TestSessionStoreHistory(t *testing.T) {
	store := NewSessionStore()
	id := store.CreateSession()

	store.AppendExchange(id, models.ChatExchange{User: "bonjour", AI: "Bonjour! Comment ça va?"})
	store.AppendExchange(id, models.ChatExchange{User: "ça va bien", AI: "Super!"})

	history := store.History(id)
	if len(history) != 2 || history[0].User != "bonjour" {
		t.Fatalf("Unexpected history: %v", history)
	}

	// Returned history is a copy.
	history[0].User = "tampered"
	if store.History(id)[0].User != "bonjour" {
		t.Error("History mutation leaked into the store")
	}

	if store.History("sess-unknown") != nil {
		t.Error("Unknown session should have nil history")
	}
}

func TestSessionStoreAppendCreatesUnknownSession(t *testing.T) {
	store := NewSessionStore()

	store.AppendExchange("sess-adhoc", models.ChatExchange{User: "hola", AI: "¡Hola!"})
	if len(store.History("sess-adhoc")) != 1 {
		t.Error("Appending to an unknown session should create it")
	}
}
