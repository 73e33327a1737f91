// Package profile defines the user profile record exchanged between the
// client, the local cache and the HTTP API, together with the job-search
// status enumeration and its fixed UI mappings.
package profile

import "encoding/json"

// DefaultAvatarRef is the placeholder avatar asset reference used whenever
// no inlined image payload is set.
const DefaultAvatarRef = "static/photo/default.png"

// Status is the job-search stage of a profile.
type Status string

const (
	StatusDocumentScreening Status = "document_screening"
	StatusFirstInterview    Status = "first_interview"
	StatusSecondInterview   Status = "second_interview"
	StatusFinalInterview    Status = "final_interview"
	StatusOffer             Status = "offer"
)

// DefaultStatus is applied when a stored or submitted status is empty or
// not one of the known values.
const DefaultStatus = StatusDocumentScreening

var statusLabels = map[Status]string{
	StatusDocumentScreening: "書類選考",
	StatusFirstInterview:    "一次面接",
	StatusSecondInterview:   "二次面接",
	StatusFinalInterview:    "最終面接",
	StatusOffer:             "内定",
}

var statusDescriptions = map[Status]string{
	StatusDocumentScreening: "応募書類の選考が進行中です。提出した資料を見直し、次のステップに備えましょう。",
	StatusFirstInterview:    "一次面接の段階です。想定問答や企業研究を引き続き行いましょう。",
	StatusSecondInterview:   "一次面接を通過しました。より深い質問に備えて準備を整えてください。",
	StatusFinalInterview:    "最終面接を控えています。志望動機や自分の強みを改めて整理しましょう。",
	StatusOffer:             "内定おめでとうございます！条件確認や入社準備を進めましょう。",
}

var statusBadgeClasses = map[Status]string{
	StatusDocumentScreening: "bg-slate-200 text-slate-700",
	StatusFirstInterview:    "bg-blue-100 text-blue-700",
	StatusSecondInterview:   "bg-purple-100 text-purple-700",
	StatusFinalInterview:    "bg-indigo-100 text-indigo-700",
	StatusOffer:             "bg-emerald-100 text-emerald-700",
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Coerce returns s if valid, otherwise DefaultStatus. The UI mappings below
// go through Coerce, so they are total: any input yields a usable value.
func (s Status) Coerce() Status {
	if s.Valid() {
		return s
	}
	return DefaultStatus
}

// Label returns the human-readable name of the status.
func (s Status) Label() string {
	return statusLabels[s.Coerce()]
}

// Description returns the guidance text shown under the status badge.
func (s Status) Description() string {
	return statusDescriptions[s.Coerce()]
}

// BadgeClass returns the visual style class for the status badge.
func (s Status) BadgeClass() string {
	return statusBadgeClasses[s.Coerce()]
}

// Profile is the user-editable record of personal/job-search state.
// JSON field names are part of the wire and cache contract.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     Status `json:"status"`
	Role       string `json:"role"`
	Notes      string `json:"notes"`
	AvatarData string `json:"avatarData"`
}

// Default returns a profile with all defaults applied.
func Default() Profile {
	return Profile{
		Status:     DefaultStatus,
		AvatarData: DefaultAvatarRef,
	}
}

// WithDefaults fills the fields that must never be empty: an invalid or
// empty status falls back to DefaultStatus, an empty avatar falls back to
// the placeholder reference. String fields keep their (possibly empty)
// values.
func (p Profile) WithDefaults() Profile {
	p.Status = p.Status.Coerce()
	if p.AvatarData == "" {
		p.AvatarData = DefaultAvatarRef
	}
	return p
}

// Unmarshal decodes a serialized profile, treating absent fields as
// defaults. It returns an error only when data is not a JSON object;
// callers decide whether that means "fall back to defaults".
func Unmarshal(data []byte) (Profile, error) {
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), err
	}
	return p.WithDefaults(), nil
}
