package telemetry

import "testing"

func TestResource_ServiceName(t *testing.T) {
	res := Resource("fuelcalc-api")
	for _, kv := range res.Attributes() {
		if kv.Key == "service.name" {
			if got := kv.Value.AsString(); got != "fuelcalc-api" {
				t.Errorf("expected fuelcalc-api, got %s", got)
			}
			return
		}
	}
	t.Error("expected service.name attribute")
}
