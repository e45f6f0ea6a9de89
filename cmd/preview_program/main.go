package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/controller/render"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"go.uber.org/zap"
)

// staticSnapshot отдаёт тестовый снимок без базы
type staticSnapshot struct {
	snapshot *model.Snapshot
}

func (s staticSnapshot) Load(ctx context.Context) (*model.Snapshot, error) {
	return s.snapshot, nil
}

func str(s string) *string {
	return &s
}

func main() {
	date := "2025-06-01"
	if len(os.Args) > 1 {
		date = os.Args[1]
	}

	// Создаем тестовые данные
	snapshot := &model.Snapshot{
		Events: []model.Event{
			{ID: "1", Name: "Standesamt", Date: str(date), TimeStart: str("11:00"), TimeEnd: str("11:45"), TransportTimeStart: str("10:15")},
			{ID: "2", Name: "Sektempfang", Date: str(date), TimeStart: str("12:00"), TimeEnd: str("13:30")},
			{ID: "3", Name: "Trauung", Date: str(date), TimeStart: str("13:00"), TimeEnd: str("14:30"), TransportTimeStart: str("12:30")},
			{ID: "4", Name: "Fotoshooting", Date: str(date), TimeStart: str("15:00"), TimeEnd: str("16:30"), TransportTimeStart: str("14:30")},
			{ID: "5", Name: "Feier", Date: str(date), TimeStart: str("18:00"), TimeEnd: str("02:00"), TransportTimeEnd: str("02:30")},
		},
	}

	planner := service.NewPlannerService(staticSnapshot{snapshot}, nil, time.Local, zap.NewNop())

	program, err := planner.DayProgram(context.Background(), date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building program: %v\n", err)
		os.Exit(1)
	}

	imageData, err := render.ProgramImage(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating image: %v\n", err)
		os.Exit(1)
	}

	filename := "program_preview.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Program image saved to %s\n", filename)
	fmt.Printf("Events: %d\n", len(program.Items))
}
