package main

import (
	"context"
	"testing"
	"time"

	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/trip"
)

func TestPreviewPagesStageKeepsEnrichmentStubbed(t *testing.T) {
	bundle := trip.Bundle{
		Trip: trip.Trip{
			ID:        "trip-1",
			Name:      "Alps Crossing",
			Countries: []string{"Switzerland"},
		},
		Points: []trip.Point{
			{
				Lat: 46.02, Lng: 7.74,
				Country: "Switzerland", Area: "Zermatt",
				CreatedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
			},
		},
	}

	result, err := previewPagesStage(logger.NewNoop()).Execute(context.Background(), pipeline.PagesInput{
		Bundle:     bundle,
		PageWidth:  595,
		PageHeight: 842,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// The point page carries the weather and altitude stat rows; both
	// must be the stubbed value, never a live lookup result.
	stubbed := 0
	for _, page := range result.Pages {
		if page.Kind != pipeline.PagePoint {
			continue
		}
		for _, el := range page.Elements {
			if el.Text == ports.NotAvailable {
				stubbed++
			}
		}
	}
	if stubbed != 2 {
		t.Errorf("found %d stubbed enrichment rows, want 2 (weather and altitude)", stubbed)
	}
}
