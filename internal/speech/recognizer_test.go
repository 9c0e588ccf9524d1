package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/af-corp/wayfinder-gateway/internal/config"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

func testRecognizer(endpoint string) *Recognizer {
	return FromConfig(config.SpeechConfig{
		SubscriptionKey: "test-sub-key",
		Region:          "australiaeast",
		Language:        "en-US",
		Endpoint:        endpoint,
		Timeout:         5 * time.Second,
	})
}

func TestRecognizeOnce_Recognized(t *testing.T) {
	var gotKey, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"RecognitionStatus":"Success","DisplayText":"go to the airport","Offset":100,"Duration":5000}`))
	}))
	defer srv.Close()

	outcome := testRecognizer(srv.URL).RecognizeOnce(context.Background(), strings.NewReader("RIFFfake"), "")
	if outcome.Kind != types.SpeechRecognized {
		t.Fatalf("expected recognized, got %s (%s)", outcome.Kind, outcome.Reason)
	}
	if outcome.Text != "go to the airport" {
		t.Errorf("expected transcript verbatim, got %q", outcome.Text)
	}
	if gotKey != "test-sub-key" {
		t.Errorf("expected subscription key header, got %q", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", gotAccept)
	}
}

func TestRecognizeOnce_NoMatchStatuses(t *testing.T) {
	for _, status := range []string{"NoMatch", "InitialSilenceTimeout", "BabbleTimeout"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"RecognitionStatus":"` + status + `"}`))
		}))

		outcome := testRecognizer(srv.URL).RecognizeOnce(context.Background(), strings.NewReader("RIFFfake"), "")
		srv.Close()

		if outcome.Kind != types.SpeechNoMatch {
			t.Errorf("status %s: expected no_match, got %s", status, outcome.Kind)
		}
	}
}

func TestRecognizeOnce_ServiceErrorIsCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	outcome := testRecognizer(srv.URL).RecognizeOnce(context.Background(), strings.NewReader("RIFFfake"), "")
	if outcome.Kind != types.SpeechCanceled {
		t.Fatalf("expected canceled, got %s", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "Error") {
		t.Errorf("cancellation reason should embed Error, got %q", outcome.Reason)
	}
}

func TestRecognizeOnce_TransportErrorIsCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	outcome := testRecognizer(srv.URL).RecognizeOnce(context.Background(), strings.NewReader("RIFFfake"), "")
	if outcome.Kind != types.SpeechCanceled {
		t.Fatalf("expected canceled, got %s", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "Error") {
		t.Errorf("cancellation reason should embed Error, got %q", outcome.Reason)
	}
}

func TestEndpoint_RegionDerived(t *testing.T) {
	r := FromConfig(config.SpeechConfig{
		SubscriptionKey: "k",
		Region:          "australiaeast",
		Timeout:         time.Second,
	})
	want := "https://australiaeast.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1?language=en-US"
	if got := r.endpoint(); got != want {
		t.Errorf("endpoint = %q, want %q", got, want)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name    string
		outcome types.SpeechOutcome
		want    string
	}{
		{
			name:    "recognized yields transcript",
			outcome: types.SpeechOutcome{Kind: types.SpeechRecognized, Text: "go to the airport"},
			want:    "go to the airport",
		},
		{
			name:    "no match yields fixed diagnostic",
			outcome: types.SpeechOutcome{Kind: types.SpeechNoMatch},
			want:    "No speech could be recognized.",
		},
		{
			name:    "canceled embeds reason",
			outcome: types.SpeechOutcome{Kind: types.SpeechCanceled, Reason: "Error"},
			want:    "Speech Recognition canceled: Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.outcome); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}
