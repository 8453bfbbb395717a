package disclosure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/compliance"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/emissions"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/energy"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/intensity"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/offsets"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/target"
	apperrors "github.com/verdanta/emissions-disclosure-engine/internal/errors"
	"github.com/verdanta/emissions-disclosure-engine/internal/infrastructure/config"
	"github.com/verdanta/emissions-disclosure-engine/internal/metrics"
)

// ServiceConfig holds the engine settings the service applies per run.
type ServiceConfig struct {
	DefaultScope2Method emissions.Scope2Method
	OffsetChecksEnabled bool
}

// ServiceConfigFrom maps the loaded application configuration onto engine
// settings.
func ServiceConfigFrom(cfg *config.Config) (ServiceConfig, error) {
	method, err := emissions.ParseScope2Method(cfg.Engine.Scope2Method)
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("engine.scope_2_method: %w", err)
	}
	return ServiceConfig{
		DefaultScope2Method: method,
		OffsetChecksEnabled: cfg.Engine.Compliance.OffsetChecksEnabled,
	}, nil
}

// Service orchestrates one disclosure run: pull the period's collections from
// the collaborators, run the engine components, assemble the bundle. The
// service holds no state between runs; everything it computes is a pure
// function of the fetched inputs.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.Registry
	checks  *validator.Validate

	activities ActivityRecordSource
	profile    CompanyProfileSource
	energyData EnergyRecordSource
	targets    TargetSource
	credits    OffsetSource

	config ServiceConfig
}

// NewService creates a disclosure service wired to its collaborators.
func NewService(
	logger *zap.Logger,
	registry *metrics.Registry,
	activities ActivityRecordSource,
	profile CompanyProfileSource,
	energyData EnergyRecordSource,
	targets TargetSource,
	credits OffsetSource,
	cfg ServiceConfig,
) *Service {
	return &Service{
		logger:     logger,
		metrics:    registry,
		checks:     validator.New(validator.WithRequiredStructEnabled()),
		activities: activities,
		profile:    profile,
		energyData: energyData,
		targets:    targets,
		credits:    credits,
		config:     cfg,
	}
}

// BuildRequest identifies the company and period to disclose. Scope2Method
// overrides the configured default for this run.
type BuildRequest struct {
	CompanyID         uuid.UUID `validate:"required"`
	ReportingPeriodID uuid.UUID `validate:"required"`
	Scope2Method      string    `validate:"omitempty,oneof=location_based market_based"`
}

// Bundle is the full disclosure handed to the report-assembly layer. Plain
// data, directly renderable.
type Bundle struct {
	CompanyID         uuid.UUID              `json:"company_id"`
	ReportingPeriodID uuid.UUID              `json:"reporting_period_id"`
	GeneratedAt       time.Time              `json:"generated_at"`
	Scope             *emissions.ScopeReport `json:"scope"`
	Intensity         *intensity.Report      `json:"intensity"`
	Energy            *energy.Report         `json:"energy"`
	Targets           []*target.Progress     `json:"targets"`
	Offsets           *offsets.Report        `json:"offsets"`
	Compliance        *compliance.Report     `json:"compliance"`
}

// BuildDisclosure runs the engine for one company and reporting period.
// Input-contract violations from the domain (empty input, unknown category,
// unsupported unit, invalid target range) propagate unchanged; data
// incompleteness surfaces inside the bundle, never as an error.
func (s *Service) BuildDisclosure(ctx context.Context, req BuildRequest) (*Bundle, error) {
	if err := s.checks.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(
			apperrors.CodeValidation, "invalid disclosure request").WithCause(err)
	}

	method := s.config.DefaultScope2Method
	if req.Scope2Method != "" {
		parsed, err := emissions.ParseScope2Method(req.Scope2Method)
		if err != nil {
			return nil, apperrors.NewValidationError(
				apperrors.CodeValidation, "invalid scope 2 method").WithCause(err)
		}
		method = parsed
	}

	log := s.logger.With(
		zap.String("company_id", req.CompanyID.String()),
		zap.String("reporting_period_id", req.ReportingPeriodID.String()),
		zap.String("scope_2_method", method.String()),
	)

	scopeReport, err := s.aggregate(ctx, req.ReportingPeriodID, method)
	if err != nil {
		s.fail(ctx, log, "aggregation failed", err)
		return nil, err
	}

	companyMetrics, err := s.profile.MetricsForPeriod(ctx, req.CompanyID, req.ReportingPeriodID)
	if err != nil {
		s.fail(ctx, log, "fetching company metrics failed", err)
		return nil, fmt.Errorf("fetching company metrics: %w", err)
	}
	intensityReport := intensity.Compute(scopeReport.TotalGHG, companyMetrics)

	energyRecords, err := s.energyData.EnergyForPeriod(ctx, req.ReportingPeriodID)
	if err != nil {
		s.fail(ctx, log, "fetching energy records failed", err)
		return nil, fmt.Errorf("fetching energy records: %w", err)
	}
	energyReport, err := energy.BuildReport(energyRecords)
	if err != nil {
		s.fail(ctx, log, "energy report failed", err)
		return nil, err
	}

	offsetRecords, err := s.credits.OffsetsForPeriod(ctx, req.ReportingPeriodID)
	if err != nil {
		s.fail(ctx, log, "fetching offsets failed", err)
		return nil, fmt.Errorf("fetching offsets: %w", err)
	}
	offsetsReport := offsets.Classify(offsetRecords)

	validatedOffsets := offsetsReport
	if !s.config.OffsetChecksEnabled {
		validatedOffsets = nil
	}
	complianceReport := compliance.Validate(scopeReport, validatedOffsets)
	s.recordComplianceMetrics(ctx, complianceReport)

	progress, err := s.trackTargets(ctx, req.CompanyID)
	if err != nil {
		s.fail(ctx, log, "target tracking failed", err)
		return nil, err
	}

	bundle := &Bundle{
		CompanyID:         req.CompanyID,
		ReportingPeriodID: req.ReportingPeriodID,
		GeneratedAt:       time.Now().UTC(),
		Scope:             scopeReport,
		Intensity:         intensityReport,
		Energy:            energyReport,
		Targets:           progress,
		Offsets:           offsetsReport,
		Compliance:        complianceReport,
	}

	s.metrics.DisclosuresBuilt.Add(ctx, 1)
	log.Info("disclosure bundle built",
		zap.String("total_ghg", scopeReport.TotalGHG.String()),
		zap.Bool("is_compliant", complianceReport.IsCompliant),
		zap.Int("findings", len(complianceReport.Findings)),
		zap.Int("targets", len(progress)),
	)
	return bundle, nil
}

func (s *Service) aggregate(ctx context.Context, periodID uuid.UUID, method emissions.Scope2Method) (*emissions.ScopeReport, error) {
	records, err := s.activities.RecordsForPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("fetching emission records: %w", err)
	}

	start := time.Now()
	report, err := emissions.Aggregate(records, method)
	if err != nil {
		return nil, err
	}

	s.metrics.AggregationDuration.Record(ctx, time.Since(start).Seconds())
	s.metrics.RecordsAggregated.Add(ctx, int64(len(records)))
	return report, nil
}

func (s *Service) trackTargets(ctx context.Context, companyID uuid.UUID) ([]*target.Progress, error) {
	registered, err := s.targets.TargetsForCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching targets: %w", err)
	}

	progress := make([]*target.Progress, 0, len(registered))
	for _, t := range registered {
		p, err := target.TrackProgress(t)
		if err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, nil
}

func (s *Service) recordComplianceMetrics(ctx context.Context, report *compliance.Report) {
	s.metrics.RecordFindings(ctx, compliance.StatusPass.String(),
		len(report.Findings)-report.WarningCount-report.ErrorCount)
	s.metrics.RecordFindings(ctx, compliance.StatusWarning.String(), report.WarningCount)
	s.metrics.RecordFindings(ctx, compliance.StatusError.String(), report.ErrorCount)
	if !report.IsCompliant {
		s.metrics.NonCompliantRun.Add(ctx, 1)
	}
}

func (s *Service) fail(ctx context.Context, log *zap.Logger, msg string, err error) {
	code := "INTERNAL"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	s.metrics.RecordFailure(ctx, code)
	log.Error(msg, zap.Error(err), zap.String("code", code))
}
