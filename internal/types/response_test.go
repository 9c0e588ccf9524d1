package types

import "testing"

const sampleRoutingReply = `{"coordinates":{"from":{"name":"OriginPoint","lat":-41.261279,"lng":174.790819},` +
	`"to":{"name":"DestinationPoint","lat":-41.290922,"lng":174.776472}},"stops":{},` +
	`"travel_options":{"max_changes":2,"walking_speed":4,"max_walking":2000},` +
	`"transport_modes":["Bus","Train","Ferry","Cable Car"],"date":"2024-06-01","time":"14:30",` +
	`"when":"LeaveAfter","objective":"MostTimely"}`

func TestDecodeRoutingPayload(t *testing.T) {
	p, err := DecodeRoutingPayload(sampleRoutingReply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Coordinates.From.Name != "OriginPoint" {
		t.Errorf("expected OriginPoint, got %s", p.Coordinates.From.Name)
	}
	if p.Coordinates.To.Lat != -41.290922 {
		t.Errorf("expected destination lat -41.290922, got %v", p.Coordinates.To.Lat)
	}
	if p.TravelOptions.MaxChanges != 2 {
		t.Errorf("expected max_changes 2, got %d", p.TravelOptions.MaxChanges)
	}
	if len(p.TransportModes) != 4 || p.TransportModes[3] != "Cable Car" {
		t.Errorf("unexpected transport modes %v", p.TransportModes)
	}
	if p.When != "LeaveAfter" || p.Objective != "MostTimely" {
		t.Errorf("unexpected when/objective %s/%s", p.When, p.Objective)
	}
}

func TestDecodeRoutingPayload_MarkdownFence(t *testing.T) {
	fenced := "```json\n" + sampleRoutingReply + "\n```"
	p, err := DecodeRoutingPayload(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Coordinates.To.Name != "DestinationPoint" {
		t.Errorf("expected DestinationPoint, got %s", p.Coordinates.To.Name)
	}
}

func TestDecodeRoutingPayload_Malformed(t *testing.T) {
	if _, err := DecodeRoutingPayload("sorry, I cannot help with that"); err == nil {
		t.Error("expected error for non-JSON reply")
	}
}

func TestContractValid(t *testing.T) {
	if !ContractFreeText.Valid() || !ContractRouting.Valid() {
		t.Error("known contracts must be valid")
	}
	if Contract("banana").Valid() {
		t.Error("unknown contract must be invalid")
	}
}

func TestCompletionResult_Exclusive(t *testing.T) {
	s := Success("hello")
	if s.Failed || s.Text != "hello" {
		t.Error("success must carry text and no failure")
	}

	f := Failure(FailureServiceError, nil)
	if !f.Failed || f.Text != "" {
		t.Error("failure must carry a kind and no text")
	}
	if f.Kind != FailureServiceError {
		t.Errorf("expected service_error kind, got %s", f.Kind)
	}
}
