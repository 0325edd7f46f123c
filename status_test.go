package emptystate

import "testing"

func TestStatus_IsLoading(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNone, false},
		{StatusLoading, true},
		{StatusNoData, false},
		{StatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsLoading()
		if result != test.expected {
			t.Errorf("Status(%s).IsLoading() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNone, false},
		{StatusLoading, false},
		{StatusNoData, true},
		{StatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	status := StatusNoData
	expected := "NoData"
	result := status.String()

	if result != expected {
		t.Errorf("Status.String() = %s, expected %s", result, expected)
	}
}
