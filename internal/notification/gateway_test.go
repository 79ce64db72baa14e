package notification_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saulo-duarte/planner-miniapp/internal/apiclient"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/notification"
)

func newGateway(t *testing.T, h http.HandlerFunc) notification.Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(config.APISettings{BaseURL: srv.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("apiclient.New failed: %v", err)
	}
	return notification.NewGateway(client)
}

func TestItemTypeIsValid(t *testing.T) {
	for _, it := range notification.AllItemTypes {
		if !it.IsValid() {
			t.Errorf("%q should be valid", it)
		}
	}
	if notification.ItemType("habit").IsValid() {
		t.Error("habit is not a notification item type")
	}
}

func TestCreateSettingValidation(t *testing.T) {
	cases := []struct {
		name string
		data notification.SettingData
	}{
		{"NoItemType", notification.SettingData{ReminderType: "daily", ReminderTimes: "09:00"}},
		{"NoReminderType", notification.SettingData{ItemType: notification.ItemTypeTask, ReminderTimes: "09:00"}},
		{"NoReminderTimes", notification.SettingData{ItemType: notification.ItemTypeTask, ReminderType: "daily"}},
		{"UnknownItemType", notification.SettingData{ItemType: "habit", ReminderType: "daily", ReminderTimes: "09:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) { called = true })

			_, err := gw.Create(context.Background(), 1, tc.data)
			if !errors.Is(err, apiclient.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if called {
				t.Error("no request should be sent for invalid data")
			}
		})
	}
}

func TestUpdateSettingCarriesUserAndBody(t *testing.T) {
	var raw []byte
	var userID string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/notifications/12" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		userID = r.URL.Query().Get("tguser_id")
		raw, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"setting_id":12,"item_type":"task","reminder_type":"daily","reminder_times":"09:00","is_active":false}`))
	})

	off := false
	updated, err := gw.Update(context.Background(), 31, 12, notification.SettingPatch{IsActive: &off})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if userID != "31" {
		t.Errorf("tguser_id not sent, got %q", userID)
	}
	if string(raw) != `{"is_active":false}` {
		t.Errorf("unexpected body %s", raw)
	}
	if updated.IsActive {
		t.Errorf("unexpected setting %+v", updated)
	}
}

func TestDeleteSettingCarriesUser(t *testing.T) {
	var userID string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		userID = r.URL.Query().Get("tguser_id")
		w.Write([]byte(`{"message":"Notification setting deleted successfully"}`))
	})

	msg, err := gw.Delete(context.Background(), 31, 12)
	if err != nil || msg != "Notification setting deleted successfully" {
		t.Fatalf("Delete: %v %q", err, msg)
	}
	if userID != "31" {
		t.Errorf("tguser_id not sent, got %q", userID)
	}
}
