package amap

import (
	"context"
	"log/slog"
	"net/url"

	"wayfare/internal/domain/entity"
	domainservice "wayfare/internal/domain/service"
)

const placeTextPath = "/v3/place/text"

// poiSearchResponse is the declared shape of the place-text endpoint.
type poiSearchResponse struct {
	Status   string    `json:"status"`
	Info     string    `json:"info"`
	InfoCode string    `json:"infocode"`
	Pois     []poiItem `json:"pois"`
}

type poiItem struct {
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Address  flexString `json:"address"`
	Adname   string     `json:"adname"`
	BizExt   *poiBizExt `json:"biz_ext"`
	Photos   []poiPhoto `json:"photos"`
}

type poiBizExt struct {
	Rating   flexString `json:"rating"`
	OpenTime flexString `json:"opentime2"`
}

type poiPhoto struct {
	URL string `json:"url"`
}

// PlaceClient serves keyword place search and first-result geocoding over
// the same provider endpoint.
type PlaceClient struct {
	client *Client
}

// NewGeocoder exposes the place-text endpoint as a Geocoder.
func NewGeocoder(client *Client) domainservice.Geocoder {
	return &PlaceClient{client: client}
}

// NewPlaceSearcher exposes the place-text endpoint as a PlaceSearcher.
func NewPlaceSearcher(client *Client) domainservice.PlaceSearcher {
	return &PlaceClient{client: client}
}

// Resolve returns the coordinate of the provider's first-ranked match for
// the keyword within the serving city. No match is service.ErrNoMatch.
func (p *PlaceClient) Resolve(ctx context.Context, keyword string) (entity.GeoPoint, error) {
	payload, err := p.search(ctx, keyword)
	if err != nil {
		return entity.GeoPoint{}, err
	}

	if len(payload.Pois) == 0 {
		return entity.GeoPoint{}, domainservice.ErrNoMatch
	}

	point, err := parseLocation(payload.Pois[0].Location)
	if err != nil {
		return entity.GeoPoint{}, &DecodeError{Endpoint: placeTextPath, cause: err}
	}

	return point, nil
}

// Search returns every result for the keyword as a normalized PlaceRecord.
// Entries whose location cannot be decoded are skipped with a warning
// rather than poisoning the whole result set.
func (p *PlaceClient) Search(ctx context.Context, keywords string) ([]entity.PlaceRecord, error) {
	payload, err := p.search(ctx, keywords)
	if err != nil {
		return nil, err
	}

	records := make([]entity.PlaceRecord, 0, len(payload.Pois))
	for _, item := range payload.Pois {
		point, err := parseLocation(item.Location)
		if err != nil {
			p.client.logger.Warn("skipping place with malformed location",
				slog.String("name", item.Name),
				slog.String("location", item.Location),
			)

			continue
		}

		record := entity.PlaceRecord{
			Name:       item.Name,
			Address:    string(item.Address),
			District:   item.Adname,
			Coordinate: point,
		}
		if item.BizExt != nil {
			record.Rating = string(item.BizExt.Rating)
			record.OpenHours = string(item.BizExt.OpenTime)
		}
		if len(item.Photos) > 0 {
			record.PhotoRef = item.Photos[0].URL
		}

		records = append(records, record)
	}

	return records, nil
}

func (p *PlaceClient) search(ctx context.Context, keywords string) (*poiSearchResponse, error) {
	query := url.Values{}
	query.Set("keywords", keywords)
	query.Set("city", p.client.city)

	var payload poiSearchResponse
	if err := p.client.getJSON(ctx, placeTextPath, query, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK {
		return nil, &ProviderError{Endpoint: placeTextPath, Info: payload.Info, InfoCode: payload.InfoCode}
	}

	return &payload, nil
}
