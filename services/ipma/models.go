package ipma

// Location is one entry of the districts/islands catalog.
type Location struct {
	GlobalID      int    `json:"globalIdLocal"`
	Name          string `json:"local"`
	DistrictID    int    `json:"idDistrito"`
	CountyID      int    `json:"idConcelho"`
	RegionID      int    `json:"idRegiao"`
	WarningAreaID string `json:"idAreaAviso"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
}

type LocationsResponse struct {
	Owner   string     `json:"owner"`
	Country string     `json:"country"`
	Data    []Location `json:"data"`
}

// ForecastDay is one day of the daily forecast for a location. IPMA ships
// the numeric fields as decimal strings; they are rendered verbatim.
type ForecastDay struct {
	Date           string `json:"forecastDate"`
	TMin           string `json:"tMin"`
	TMax           string `json:"tMax"`
	PrecipProb     string `json:"precipitaProb"`
	WindDir        string `json:"predWindDir"`
	WeatherTypeID  int    `json:"idWeatherType"`
	WindSpeedClass int    `json:"classWindSpeed"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

type ForecastResponse struct {
	Owner      string        `json:"owner"`
	Country    string        `json:"country"`
	DataUpdate string        `json:"dataUpdate"`
	GlobalID   int           `json:"globalIdLocal"`
	Data       []ForecastDay `json:"data"`
}

// WeatherType is one entry of the weather-type descriptive catalog, joined
// against ForecastDay.WeatherTypeID.
type WeatherType struct {
	ID            int    `json:"idWeatherType"`
	DescriptionEN string `json:"descWeatherTypeEN"`
	DescriptionPT string `json:"descWeatherTypePT"`
}

type WeatherTypesResponse struct {
	Owner   string        `json:"owner"`
	Country string        `json:"country"`
	Data    []WeatherType `json:"data"`
}

// Warning is one active weather warning. Text is frequently empty.
type Warning struct {
	TypeName  string `json:"awarenessTypeName"`
	AreaID    string `json:"idAreaAviso"`
	Level     string `json:"awarenessLevelID"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Text      string `json:"text"`
}

// SeismicEvent is one observed event. Magnitude keeps the upstream
// "magnitud" spelling in the wire tag. Region is null for offshore events.
type SeismicEvent struct {
	Time       string  `json:"time"`
	Magnitude  string  `json:"magnitud"`
	MagType    string  `json:"magType"`
	Depth      float64 `json:"depth"`
	Region     *string `json:"obsRegion"`
	Latitude   string  `json:"lat"`
	Longitude  string  `json:"lon"`
	Source     string  `json:"source"`
	DataUpdate string  `json:"dataUpdate"`
}

type SeismicResponse struct {
	Owner      string         `json:"owner"`
	Country    string         `json:"country"`
	UpdateDate string         `json:"updateDate"`
	Data       []SeismicEvent `json:"data"`
}

// Observation is one station reading. Values at or below the sentinel
// (-99) mean "not measured" and must never be rendered.
type Observation struct {
	Temperature   float64 `json:"temperatura"`
	Humidity      float64 `json:"humidade"`
	Pressure      float64 `json:"pressao"`
	WindIntensity float64 `json:"intensidadeVentoKM"`
	Precipitation float64 `json:"precAcumulada"`
}

// SentinelUnavailable marks a measurement the station did not take.
const SentinelUnavailable = -99.0

// ObservationMap is the snapshot payload: timestamp -> station id ->
// reading. Station entries may be JSON null.
type ObservationMap map[string]map[string]*Observation

// Station is one GeoJSON-ish feature of the station catalog; only the
// identifying properties are consumed.
type Station struct {
	Properties struct {
		ID   int    `json:"idEstacao"`
		Name string `json:"localEstacao"`
	} `json:"properties"`
}

// UVEntry is one row of the UV forecast list.
type UVEntry struct {
	Date     string `json:"data"`
	GlobalID int    `json:"globalIdLocal"`
	Index    string `json:"iUv"`
	Interval string `json:"intervaloHora"`
}
