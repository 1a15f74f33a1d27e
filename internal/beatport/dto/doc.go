// Package dto holds the raw JSON document shapes returned by the Beatport
// v4 API. The provider package converts these into the normalized records
// of internal/model; nothing outside the client and provider should need
// them.
package dto
