package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
)

func validUpload() model.Upload {
	return model.Upload{
		Source:      model.UploadSourceInternal,
		ReportType:  "IFS Extract",
		PeriodStart: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		Filename:    "ifs-june.csv",
		RecordCount: 120,
	}
}

func TestRegisterUploadValidation(t *testing.T) {
	s := &UploadService{reportTypes: []string{"Movement Report", "IFS Extract"}}
	supplierID := uuid.New()

	cases := []struct {
		name   string
		mutate func(u *model.Upload)
		role   model.Role
		want   error
	}{
		{
			name:   "viewer denied",
			mutate: func(u *model.Upload) {},
			role:   model.RoleViewer,
			want:   ErrPermissionDenied,
		},
		{
			name:   "blank filename",
			mutate: func(u *model.Upload) { u.Filename = " " },
			role:   model.RoleAnalyst,
			want:   ErrInvalidInput,
		},
		{
			name:   "missing period",
			mutate: func(u *model.Upload) { u.PeriodEnd = time.Time{} },
			role:   model.RoleAnalyst,
			want:   ErrInvalidInput,
		},
		{
			name: "inverted period",
			mutate: func(u *model.Upload) {
				u.PeriodStart, u.PeriodEnd = u.PeriodEnd, u.PeriodStart
			},
			role: model.RoleAnalyst,
			want: ErrInvalidInput,
		},
		{
			name:   "supplier upload without supplier",
			mutate: func(u *model.Upload) { u.Source = model.UploadSourceSupplier },
			role:   model.RoleAnalyst,
			want:   ErrInvalidInput,
		},
		{
			name:   "internal upload with supplier",
			mutate: func(u *model.Upload) { u.SupplierID = &supplierID },
			role:   model.RoleAnalyst,
			want:   ErrInvalidInput,
		},
		{
			name:   "unknown source",
			mutate: func(u *model.Upload) { u.Source = "EMAIL" },
			role:   model.RoleAnalyst,
			want:   ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upload := validUpload()
			tc.mutate(&upload)
			_, err := s.RegisterUpload(context.Background(), RegisterUploadInput{
				Upload:    upload,
				Principal: testPrincipal(tc.role),
			})
			if !errors.Is(err, tc.want) {
				t.Errorf("RegisterUpload error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReportTypeAllowed(t *testing.T) {
	s := &UploadService{reportTypes: []string{"Movement Report", "IFS Extract"}}

	if !s.reportTypeAllowed("Movement Report") {
		t.Error("Movement Report rejected")
	}
	if !s.reportTypeAllowed("ifs extract") {
		t.Error("case-insensitive match rejected")
	}
	if s.reportTypeAllowed("Fuel Summary") {
		t.Error("unknown report type accepted")
	}
}
