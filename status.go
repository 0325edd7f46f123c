package emptystate

// Status represents the load status of the wrapped host
type Status string

const (
	// StatusNone means no particular load state is attached to the host
	StatusNone Status = "None"

	// StatusLoading means the host's data is currently being fetched
	StatusLoading Status = "Loading"

	// StatusNoData means a load finished and produced no items
	StatusNoData Status = "NoData"

	// StatusError means the last load failed
	StatusError Status = "Error"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsLoading returns true while the host is fetching data
func (s Status) IsLoading() bool {
	return s == StatusLoading
}

// IsFinished returns true if the status describes a completed load, with or
// without data.
func (s Status) IsFinished() bool {
	return s == StatusNoData || s == StatusError
}
