// Package shops looks up venue entries in the StadtKatalog open directory.
// https://docs.stadtkatalog.org/opendata-rest-api/
package shops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/models"
	"github.com/stadtbots/seestadt-skill/pkg/http/client"
)

// ErrNotFound means the directory yields nothing usable for the query.
var ErrNotFound = errors.New("no usable directory entry")

// GeoFence names a catchment area used to scope full-text search results.
type GeoFence string

const FenceSeestadt GeoFence = "seestadt"

type Directory struct {
	httpClient *client.Client
	blacklist  map[string]bool
	vagueTerms map[string]bool
}

// NewDirectory builds a directory client. Blacklisted entry ids are never
// returned; queries matching a vague term are rejected before searching,
// since terms like "seestadt" rank arbitrary entries first.
func NewDirectory(httpClient *client.Client, blacklist, vagueTerms []string) *Directory {
	d := &Directory{
		httpClient: httpClient,
		blacklist:  make(map[string]bool, len(blacklist)),
		vagueTerms: make(map[string]bool, len(vagueTerms)),
	}
	for _, id := range blacklist {
		d.blacklist[id] = true
	}
	for _, term := range vagueTerms {
		d.vagueTerms[strings.ToLower(term)] = true
	}
	return d
}

// Entry fetches a directory entry by its exact id.
func (d *Directory) Entry(ctx context.Context, id string) (*models.ShopEntry, error) {
	if d.blacklist[id] {
		return nil, ErrNotFound
	}

	resp, err := d.httpClient.Get(ctx, "/entry/"+url.PathEscape(id))
	if err != nil {
		log.Error().Err(err).Str("entry_id", id).Msg("could not read stadtkatalog entry")
		return nil, ErrNotFound
	}
	if resp.StatusCode != 200 {
		return nil, ErrNotFound
	}

	var body struct {
		Data *models.ShopEntry `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Data == nil {
		log.Error().Err(err).Str("entry_id", id).Msg("malformed stadtkatalog entry response")
		return nil, ErrNotFound
	}

	return body.Data, nil
}

// Search runs a full-text search scoped to a geofence and accepts only a
// single unambiguous top hit.
func (d *Directory) Search(ctx context.Context, query string, fence GeoFence) (*models.ShopEntry, error) {
	if d.vagueTerms[strings.ToLower(strings.TrimSpace(query))] {
		log.Info().Str("query", query).Msg("rejecting too vague search term")
		return nil, ErrNotFound
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("sortField", "relevance")
	q.Set("sortOrder", "desc")
	q.Set("size", "1")
	q.Set("geofence", string(fence))

	resp, err := d.httpClient.Get(ctx, "/search/fulltext?"+q.Encode())
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("could not search stadtkatalog")
		return nil, ErrNotFound
	}
	if resp.StatusCode != 200 {
		return nil, ErrNotFound
	}

	var body struct {
		Hits []struct {
			ID   string            `json:"id"`
			Data *models.ShopEntry `json:"data"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		log.Error().Err(err).Str("query", query).Msg("malformed stadtkatalog search response")
		return nil, ErrNotFound
	}

	if len(body.Hits) != 1 || body.Hits[0].Data == nil {
		return nil, ErrNotFound
	}
	if d.blacklist[body.Hits[0].ID] {
		return nil, fmt.Errorf("top hit is blacklisted: %w", ErrNotFound)
	}

	return body.Hits[0].Data, nil
}
