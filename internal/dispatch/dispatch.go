// Package dispatch routes named tool operations to their fetch-and-format
// pipelines. The operation table is built once at construction and is
// read-only afterwards; every call re-fetches the catalogs it needs.
package dispatch

import (
	"context"
	"fmt"
	"math"

	"ipma-mcp/internal/format"
	"ipma-mcp/internal/logger"
	"ipma-mcp/services/ipma"
)

// DataSource is the remote-fetch capability the pipelines run against.
// *ipma.Client implements it; tests substitute fetch-counting fakes.
type DataSource interface {
	Locations(ctx context.Context) ([]ipma.Location, error)
	Forecast(ctx context.Context, globalID int) (*ipma.ForecastResponse, error)
	WeatherTypes(ctx context.Context) ([]ipma.WeatherType, error)
	Warnings(ctx context.Context) ([]ipma.Warning, error)
	Seismic(ctx context.Context, areaID int) (*ipma.SeismicResponse, error)
	Observations(ctx context.Context) (ipma.ObservationMap, error)
	Stations(ctx context.Context) ([]ipma.Station, error)
	UV(ctx context.Context) ([]ipma.UVEntry, error)
}

var _ DataSource = (*ipma.Client)(nil)

// ParamSpec describes one operation parameter for validation and for the
// advertised tool schema.
type ParamSpec struct {
	Name        string
	Type        string // "string" or "number"
	Description string
	Required    bool
	Default     any
	Enum        []string
	Min, Max    float64 // advertised bounds for number params; zero means unset
}

// Operation is one named tool: its schema plus the pipeline that runs it.
type Operation struct {
	Name        string
	Description string
	Params      []ParamSpec
	Run         func(ctx context.Context, args map[string]any) (string, error)
}

// Dispatcher holds the immutable operation table.
type Dispatcher struct {
	source DataSource
	ops    map[string]*Operation
	order  []string
}

func New(source DataSource) *Dispatcher {
	d := &Dispatcher{
		source: source,
		ops:    make(map[string]*Operation),
	}

	d.register(&Operation{
		Name:        "get_weather_forecast",
		Description: "Get the daily weather forecast for a Portuguese city.",
		Params: []ParamSpec{
			{Name: "city", Type: "string", Required: true,
				Description: "City or place name, matched against the IPMA location catalog."},
			{Name: "days", Type: "number", Default: 5.0, Min: 1, Max: 10,
				Description: "Number of forecast days to return (1-10)."},
		},
		Run: d.runForecast,
	})
	d.register(&Operation{
		Name:        "get_weather_warnings",
		Description: "Get the currently active weather warnings for Portugal.",
		Run:         d.runWarnings,
	})
	d.register(&Operation{
		Name:        "get_seismic_data",
		Description: "Get recent seismic events observed by IPMA.",
		Params: []ParamSpec{
			{Name: "area", Type: "string", Default: "all",
				Enum:        []string{"continent", "azores", "madeira", "all"},
				Description: "Seismic area; \"all\" behaves as continent."},
		},
		Run: d.runSeismic,
	})
	d.register(&Operation{
		Name:        "get_locations",
		Description: "List all locations in the IPMA forecast catalog, grouped by district.",
		Run:         d.runLocations,
	})
	d.register(&Operation{
		Name:        "get_weather_stations",
		Description: "Get the latest readings from IPMA weather stations.",
		Run:         d.runStations,
	})
	d.register(&Operation{
		Name:        "get_uv_forecast",
		Description: "Get the UV index forecast for Portuguese locations.",
		Run:         d.runUV,
	})

	return d
}

func (d *Dispatcher) register(op *Operation) {
	d.ops[op.Name] = op
	d.order = append(d.order, op.Name)
}

// Operations returns the table in registration order, for tool listing.
func (d *Dispatcher) Operations() []*Operation {
	ops := make([]*Operation, 0, len(d.order))
	for _, name := range d.order {
		ops = append(ops, d.ops[name])
	}
	return ops
}

// Dispatch validates args against the named operation's schema and runs its
// pipeline. Every failure it returns is a *Error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	op, ok := d.ops[name]
	if !ok {
		return "", methodNotFound(name)
	}

	validated, err := validateArgs(op.Params, args)
	if err != nil {
		return "", err
	}

	logger.Debug("dispatching operation", "operation", name)

	text, err := op.Run(ctx, validated)
	if err != nil {
		logger.Error("operation failed", "operation", name, "error", err)
		return "", normalizeError(err)
	}
	return text, nil
}

// validateArgs checks args against the specs and fills in defaults. It runs
// before any remote fetch; extra arguments are ignored.
func validateArgs(specs []ParamSpec, args map[string]any) (map[string]any, error) {
	validated := make(map[string]any, len(specs))
	for _, spec := range specs {
		raw, present := args[spec.Name]
		if !present || raw == nil {
			if spec.Required {
				return nil, invalidParams("missing required parameter %q", spec.Name)
			}
			validated[spec.Name] = spec.Default
			continue
		}

		switch spec.Type {
		case "string":
			s, ok := raw.(string)
			if !ok {
				return nil, invalidParams("parameter %q must be a string", spec.Name)
			}
			if spec.Required && s == "" {
				return nil, invalidParams("parameter %q must not be empty", spec.Name)
			}
			validated[spec.Name] = s
		case "number":
			n, ok := toFloat(raw)
			if !ok {
				return nil, invalidParams("parameter %q must be a number", spec.Name)
			}
			if n != math.Trunc(n) {
				return nil, invalidParams("parameter %q must be an integer", spec.Name)
			}
			if spec.Min != 0 && n < spec.Min {
				return nil, invalidParams("parameter %q must be at least %g", spec.Name, spec.Min)
			}
			validated[spec.Name] = n
		default:
			return nil, invalidParams("parameter %q has unsupported type %q", spec.Name, spec.Type)
		}
	}
	return validated, nil
}

// toFloat accepts the numeric shapes a JSON decoder may hand over.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func (d *Dispatcher) runForecast(ctx context.Context, args map[string]any) (string, error) {
	city := args["city"].(string)
	days := int(args["days"].(float64))

	locations, err := d.source.Locations(ctx)
	if err != nil {
		return "", err
	}

	loc, found := ipma.FindLocation(locations, city)
	if !found {
		// Not-found is a valid outcome, not a failure.
		return fmt.Sprintf("City %q not found. Use get_locations to list the available locations.", city), nil
	}

	forecast, err := d.source.Forecast(ctx, loc.GlobalID)
	if err != nil {
		return "", err
	}

	types, err := d.source.WeatherTypes(ctx)
	if err != nil {
		return "", err
	}

	return format.Forecast(loc, days, forecast, types), nil
}

func (d *Dispatcher) runWarnings(ctx context.Context, _ map[string]any) (string, error) {
	warnings, err := d.source.Warnings(ctx)
	if err != nil {
		return "", err
	}
	return format.Warnings(warnings), nil
}

func (d *Dispatcher) runSeismic(ctx context.Context, args map[string]any) (string, error) {
	areaID, area := ipma.AreaID(args["area"].(string))

	resp, err := d.source.Seismic(ctx, areaID)
	if err != nil {
		return "", err
	}
	return format.Seismic(area, resp), nil
}

func (d *Dispatcher) runLocations(ctx context.Context, _ map[string]any) (string, error) {
	locations, err := d.source.Locations(ctx)
	if err != nil {
		return "", err
	}
	return format.Locations(locations), nil
}

func (d *Dispatcher) runStations(ctx context.Context, _ map[string]any) (string, error) {
	observations, err := d.source.Observations(ctx)
	if err != nil {
		return "", err
	}

	catalog, err := d.source.Stations(ctx)
	if err != nil {
		return "", err
	}

	return format.Stations(observations, catalog), nil
}

func (d *Dispatcher) runUV(ctx context.Context, _ map[string]any) (string, error) {
	entries, err := d.source.UV(ctx)
	if err != nil {
		return "", err
	}

	locations, err := d.source.Locations(ctx)
	if err != nil {
		return "", err
	}

	return format.UV(entries, locations), nil
}
