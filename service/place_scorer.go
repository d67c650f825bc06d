package services

import (
	"math"
	"sort"
	"strings"

	"lp-server/geo"
	"lp-server/models"
	"lp-server/util"
)

// Fitness score weights. They sum to 1 so the composite stays in [0, 1].
const (
	RATING_WEIGHT   = 0.4
	DISTANCE_WEIGHT = 0.3
	PRICE_WEIGHT    = 0.2
	OPEN_WEIGHT     = 0.1
)

// Neutral sub-scores for absent signals.
const (
	UNKNOWN_RATING_SCORE = 0.6
	UNKNOWN_PRICE_SCORE  = 0.6
	UNKNOWN_OPEN_SCORE   = 0.5
)

var priceScores = map[string]float64{
	models.PRICE_LEVEL_FREE:           1.0,
	models.PRICE_LEVEL_INEXPENSIVE:    0.9,
	models.PRICE_LEVEL_MODERATE:       0.7,
	models.PRICE_LEVEL_EXPENSIVE:      0.4,
	models.PRICE_LEVEL_VERY_EXPENSIVE: 0.2,
}

// PlaceScorer converts raw place records into normalized, scored results
// ordered by how well they match the request.
type PlaceScorer struct{}

func NewPlaceScorer() *PlaceScorer {
	return &PlaceScorer{}
}

// Normalize filters raw places by the request's cuisine keywords, computes
// distance and fitness score for each survivor, sorts descending by score
// (stable, so ties keep input order) and truncates to the request limit.
func (s *PlaceScorer) Normalize(raw []models.RawPlace, req models.SearchRequest) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(raw))
	for _, p := range raw {
		if !matchesCuisine(p, req.Cuisine) {
			continue
		}

		// a place without a coordinate sits at the request origin
		coord := req.Location
		if p.Location != nil {
			coord = *p.Location
		}
		distance := geo.DistanceMeters(req.Location.Lat, req.Location.Lng, coord.Lat, coord.Lng)

		var address *string
		if p.Address != "" {
			a := p.Address
			address = &a
		}

		results = append(results, models.SearchResult{
			ID:          p.ID,
			Name:        p.Name,
			Rating:      p.Rating,
			DistanceM:   int(distance),
			PriceLevel:  p.PriceLevel,
			OpenNow:     p.OpenNow,
			Score:       fitnessScore(p, distance, req.RadiusM),
			MapImageURL: util.StaticMapURL(coord.Lat, coord.Lng, p.ID),
			MapsURL:     p.MapsURL,
			Address:     address,
			Tags:        p.Tags,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results
}

// matchesCuisine passes every place when no keywords were requested;
// otherwise a place passes when any keyword is a substring of its
// lowercased name or of any lowercased tag.
func matchesCuisine(p models.RawPlace, cuisine []string) bool {
	if len(cuisine) == 0 {
		return true
	}
	name := strings.ToLower(p.Name)
	for _, keyword := range cuisine {
		if strings.Contains(name, keyword) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), keyword) {
				return true
			}
		}
	}
	return false
}

// fitnessScore is a weighted composite of rating, proximity, price tier and
// open status, rounded to three decimals.
func fitnessScore(p models.RawPlace, distanceM, radiusM float64) float64 {
	ratingScore := UNKNOWN_RATING_SCORE
	if p.Rating != nil {
		ratingScore = *p.Rating / 5
	}

	distanceScore := 1 - math.Min(1, distanceM/math.Max(radiusM, 1))

	priceScore := UNKNOWN_PRICE_SCORE
	if p.PriceLevel != nil {
		if s, ok := priceScores[*p.PriceLevel]; ok {
			priceScore = s
		}
	}

	openScore := UNKNOWN_OPEN_SCORE
	if p.OpenNow != nil {
		if *p.OpenNow {
			openScore = 1
		} else {
			openScore = 0
		}
	}

	score := RATING_WEIGHT*ratingScore +
		DISTANCE_WEIGHT*distanceScore +
		PRICE_WEIGHT*priceScore +
		OPEN_WEIGHT*openScore
	return math.Round(score*1000) / 1000
}
