package jenkins

// JobSummary is one entry of the server's job listing.
type JobSummary struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Color string `json:"color,omitempty"`
}

// BuildRef points at a single build of a job.
type BuildRef struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
}

// HealthReport is one of the health indicators Jenkins attaches to a job.
type HealthReport struct {
	Description   string `json:"description"`
	IconClassName string `json:"iconClassName,omitempty"`
	IconURL       string `json:"iconUrl,omitempty"`
	Score         int    `json:"score"`
}

// JobInfo is the job descriptor returned by GET /job/{name}/api/json.
// Jenkins sends far more than this; only the well-known keys are typed
// and everything else is dropped on decode.
type JobInfo struct {
	Name                string         `json:"name"`
	DisplayName         string         `json:"displayName,omitempty"`
	FullName            string         `json:"fullName,omitempty"`
	URL                 string         `json:"url"`
	Description         string         `json:"description,omitempty"`
	Buildable           bool           `json:"buildable"`
	Color               string         `json:"color,omitempty"`
	InQueue             bool           `json:"inQueue"`
	Builds              []BuildRef     `json:"builds"`
	LastBuild           *BuildRef      `json:"lastBuild"`
	LastSuccessfulBuild *BuildRef      `json:"lastSuccessfulBuild,omitempty"`
	LastFailedBuild     *BuildRef      `json:"lastFailedBuild,omitempty"`
	NextBuildNumber     int            `json:"nextBuildNumber"`
	HealthReport        []HealthReport `json:"healthReport,omitempty"`
}

// BuildReceipt acknowledges a triggered build. Number is best-effort:
// it is read back from the job's nextBuildNumber after the trigger and
// is zero when that follow-up read fails.
type BuildReceipt struct {
	Job    string `json:"job"`
	Number int    `json:"build_number,omitempty"`
	Queued bool   `json:"queued"`
}

// jobListResponse is the shape of GET /api/json?tree=jobs[...].
type jobListResponse struct {
	Jobs []JobSummary `json:"jobs"`
}

// crumbResponse is the shape of GET /crumbIssuer/api/json.
type crumbResponse struct {
	Crumb             string `json:"crumb"`
	CrumbRequestField string `json:"crumbRequestField"`
}
