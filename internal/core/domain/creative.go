package domain

import (
	"encoding/json"
	"time"
)

// CreativeStatus is the review status of a persisted creative.
type CreativeStatus string

const (
	StatusPendingReview CreativeStatus = "pending_review"
	StatusApproved      CreativeStatus = "approved"
	StatusRejected      CreativeStatus = "rejected"
)

// CreativeDescriptor is one creative as supplied by the caller in a sync
// request. The pipeline never mutates a descriptor; derived values are
// carried separately (RenderOutput) and merged at persistence time.
type CreativeDescriptor struct {
	// CreativeID is the caller's stable identifier. A fresh id is
	// generated during validation when it is empty.
	CreativeID string `json:"creative_id,omitempty"`
	// Name is the display name. Must be non-empty after trimming.
	Name string `json:"name"`
	// Format references the creative format on an external registry.
	Format FormatRef `json:"format"`
	// Assets maps a role name (e.g. "media", "brief") to its content.
	Assets map[string]Asset `json:"assets,omitempty"`
	// Inputs carries free-form tags and generation inputs.
	Inputs map[string]any `json:"inputs,omitempty"`
	// Approve signals the caller's intent to finalize a generative build.
	Approve *bool `json:"approve,omitempty"`
}

// Asset is one named piece of creative content. Exactly which fields are
// set depends on the asset kind: a media asset carries a URL and
// dimensions, a text asset carries Content, structured payloads such as
// promoted offerings live in Fields.
type Asset struct {
	Kind    string         `json:"kind,omitempty"`
	URL     string         `json:"url,omitempty"`
	Content string         `json:"content,omitempty"`
	Width   int            `json:"width,omitempty"`
	Height  int            `json:"height,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// ValidatedCreative is the output of validation: the descriptor with a
// definite id and its format resolved against the registry.
type ValidatedCreative struct {
	CreativeID string
	Name       string
	Format     FormatRef
	Spec       *FormatSpec
	Assets     map[string]Asset
	Inputs     map[string]any
	Approve    bool
}

// CreativeData is the merged data bag of a creative record. MediaURL,
// Width, Height and Assets follow the caller-wins merge rule; the build
// fields are only ever produced by the renderer.
type CreativeData struct {
	MediaURL       string           `json:"media_url,omitempty"`
	Width          int              `json:"width,omitempty"`
	Height         int              `json:"height,omitempty"`
	Assets         map[string]Asset `json:"assets,omitempty"`
	BuildStatus    string           `json:"build_status,omitempty"`
	BuildContextID string           `json:"build_context_id,omitempty"`
	RawResponse    json.RawMessage  `json:"raw_response,omitempty"`
}

// CreativeRecord is a persisted creative. CreativeID is unique per
// (tenant, principal); ownership is immutable after creation and is
// enforced by always looking up with both tenant and principal.
type CreativeRecord struct {
	TenantID    string
	PrincipalID string
	CreativeID  string
	Name        string
	Format      FormatRef
	Status      CreativeStatus
	Data        CreativeData
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RenderOutput is the candidate output of the renderer dispatcher. Every
// field is a proposal: BuildUpsertRecord decides what actually lands on
// the record, so the dispatcher never overwrites caller-supplied data.
type RenderOutput struct {
	MediaURL       string
	Width          int
	Height         int
	Assets         map[string]Asset
	BuildStatus    string
	BuildContextID string
	RawResponse    json.RawMessage
}
