package util

import (
	"io"
	"net/url"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"lp-server/models"
)

// PlotSearchResults renders the request origin and the scored results as a
// geo scatter chart. Debug aid only.
func PlotSearchResults(w io.Writer, origin models.LatLng, results []models.SearchResult) error {
	points := []opts.GeoData{
		{Name: "origin", Value: []float64{origin.Lng, origin.Lat}},
	}
	for _, r := range results {
		lat, lng, ok := coordinateFromMapURL(r.MapImageURL)
		if !ok {
			continue
		}
		points = append(points, opts.GeoData{Name: r.Name, Value: []float64{lng, lat}})
	}

	geoChart := charts.NewGeo()
	geoChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Search Results Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geoChart.AddSeries("Results", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geoChart.Render(w)
}

// coordinateFromMapURL recovers the coordinate embedded in a static map
// reference built by StaticMapURL.
func coordinateFromMapURL(raw string) (float64, float64, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, 0, false
	}
	q := u.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
