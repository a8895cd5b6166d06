package ipma

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ipma-mcp/internal/api"
	"ipma-mcp/internal/config"
)

// Endpoint paths under the API base URL.
const (
	pathLocations    = "/open-data/distrits-islands.json"
	pathForecast     = "/open-data/forecast/meteorology/cities/daily/%d.json"
	pathWeatherTypes = "/open-data/weather-type-classe.json"
	pathWarnings     = "/open-data/forecast/warnings/warnings_www.json"
	pathSeismic      = "/open-data/observation/seismic/%d.json"
	pathObservations = "/open-data/observation/meteorology/stations/observations.json"
	pathStations     = "/open-data/observation/meteorology/stations/stations.json"
	pathUV           = "/open-data/forecast/meteorology/uv/uv.json"
)

// Seismic area identifiers as published by IPMA.
const (
	AreaContinent = 1
	AreaAzores    = 2
	AreaMadeira   = 3
)

// Client fetches and decodes IPMA open-data payloads.
type Client struct {
	Config *config.Config
	HTTP   *api.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		Config: cfg,
		HTTP:   api.NewClient(cfg.HTTPTimeout),
	}
}

// fetch GETs path under the base URL and decodes the body into out.
func (c *Client) fetch(ctx context.Context, path string, out any) error {
	body, err := c.HTTP.Get(ctx, c.Config.BaseURL+path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}

// Locations fetches the districts/islands catalog.
func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	var resp LocationsResponse
	if err := c.fetch(ctx, pathLocations, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Forecast fetches the daily forecast series for a location id.
func (c *Client) Forecast(ctx context.Context, globalID int) (*ForecastResponse, error) {
	var resp ForecastResponse
	if err := c.fetch(ctx, fmt.Sprintf(pathForecast, globalID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WeatherTypes fetches the weather-type descriptive catalog.
func (c *Client) WeatherTypes(ctx context.Context) ([]WeatherType, error) {
	var resp WeatherTypesResponse
	if err := c.fetch(ctx, pathWeatherTypes, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Warnings fetches the currently active warnings. An empty list is a valid
// payload, not an error.
func (c *Client) Warnings(ctx context.Context) ([]Warning, error) {
	var warnings []Warning
	if err := c.fetch(ctx, pathWarnings, &warnings); err != nil {
		return nil, err
	}
	return warnings, nil
}

// Seismic fetches observed events for an area id (AreaContinent,
// AreaAzores or AreaMadeira).
func (c *Client) Seismic(ctx context.Context, areaID int) (*SeismicResponse, error) {
	var resp SeismicResponse
	if err := c.fetch(ctx, fmt.Sprintf(pathSeismic, areaID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Observations fetches the time-bucketed station observation snapshot.
func (c *Client) Observations(ctx context.Context) (ObservationMap, error) {
	var obs ObservationMap
	if err := c.fetch(ctx, pathObservations, &obs); err != nil {
		return nil, err
	}
	return obs, nil
}

// Stations fetches the station descriptive catalog.
func (c *Client) Stations(ctx context.Context) ([]Station, error) {
	var stations []Station
	if err := c.fetch(ctx, pathStations, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// UV fetches the UV forecast list.
func (c *Client) UV(ctx context.Context) ([]UVEntry, error) {
	var entries []UVEntry
	if err := c.fetch(ctx, pathUV, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindLocation resolves a free-text city name by case-insensitive substring
// containment against each catalog name, first match in catalog order.
// Ambiguous inputs resolve silently to the earliest entry; there is no
// scoring and no diacritic folding.
func FindLocation(locations []Location, name string) (*Location, bool) {
	needle := strings.ToLower(name)
	for i := range locations {
		if strings.Contains(strings.ToLower(locations[i].Name), needle) {
			return &locations[i], true
		}
	}
	return nil, false
}

// AreaID maps a seismic area selector to its IPMA area id and canonical
// name. "all", the empty string and anything unrecognized behave as
// continent.
func AreaID(selector string) (int, string) {
	switch strings.ToLower(selector) {
	case "azores":
		return AreaAzores, "azores"
	case "madeira":
		return AreaMadeira, "madeira"
	default:
		return AreaContinent, "continent"
	}
}
