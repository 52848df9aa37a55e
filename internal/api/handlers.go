package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpgo/fso-calculator/internal/calculation"
	"github.com/rpgo/fso-calculator/internal/config"
	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/internal/output"
)

// maxBodyBytes bounds a calculation request body
const maxBodyBytes = 1 << 20

// Handler serves the calculator endpoints. It holds only the engine and its
// reference data, neither of which is modified after construction.
type Handler struct {
	Engine *calculation.Engine
	Logger calculation.Logger
}

// NewHandler creates a handler over an engine
func NewHandler(engine *calculation.Engine) *Handler {
	return &Handler{Engine: engine, Logger: calculation.NopLogger{}}
}

// SetLogger sets the logger for calculation failures. If nil is provided, a no-op logger is used.
func (h *Handler) SetLogger(l calculation.Logger) {
	if l == nil {
		h.Logger = calculation.NopLogger{}
		return
	}
	h.Logger = l
}

// Calculate handles POST /api/calculate. The body is either a form
// submission or a flat JSON object keyed by form field name.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	started := time.Now().UTC()
	asOf := h.Engine.AsOf()

	in, err := decodeInput(w, r, asOf)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.Engine.CalculateAt(in, asOf)
	if err != nil {
		var planErr *calculation.UnknownPlanError
		if errors.As(err, &planErr) {
			writeJSON(w, http.StatusUnprocessableEntity, UnknownPlanResponse{
				ErrorResponse: ErrorResponse{Error: "Invalid health plan or coverage type", Details: planErr.Error()},
				Plan:          planErr.Plan,
				Coverage:      string(planErr.Tier),
			})
			return
		}
		h.Logger.Errorf("calculation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	completed := time.Now().UTC()
	writeJSON(w, http.StatusOK, CalculateResponse{
		CalculationMetadata: CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   started.Format(time.RFC3339),
			CalculationCompletedAt: completed.Format(time.RFC3339),
			CalculationDurationMs:  completed.Sub(started).Milliseconds(),
			ReferenceVersion:       h.Engine.Reference.Version,
		},
		View: output.Present(result, h.Engine.Reference.StateName),
	})
}

// Reference handles GET /api/reference
func (h *Handler) Reference(w http.ResponseWriter, r *http.Request) {
	ref := h.Engine.Reference
	resp := ReferenceResponse{
		Version: ref.Version,
		Policy:  h.Engine.Policy.Name,
		Locality: LocalityDTO{
			Code:  ref.Locality.Code,
			Label: ref.Locality.Label,
			Rate:  ref.Locality.Rate.String(),
		},
		Grades:        make([]GradeDTO, 0, len(ref.SalarySchedule)),
		Plans:         make([]PlanDTO, 0, len(ref.HealthPlans)),
		CoverageTypes: make([]OptionDTO, 0, len(domain.CoverageTiers)),
		States:        ref.States,
	}

	for _, g := range ref.SalarySchedule {
		resp.Grades = append(resp.Grades, gradeDTO(ref, g))
	}
	for _, p := range ref.HealthPlans {
		resp.Plans = append(resp.Plans, PlanDTO{ID: p.ID, Name: p.Name})
	}
	for _, t := range domain.CoverageTiers {
		resp.CoverageTypes = append(resp.CoverageTypes, OptionDTO{Value: string(t), Label: t.Label()})
	}
	for _, s := range ref.LocalitySalaries() {
		resp.LocalitySalaries = append(resp.LocalitySalaries, output.FormatCurrency(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func gradeDTO(ref *domain.ReferenceData, g domain.PayGrade) GradeDTO {
	dto := GradeDTO{Grade: g.Grade, Label: g.Label, DefaultStep: g.DefaultStep}
	if g.HasNamedSteps() {
		for _, s := range g.NamedSteps {
			salary := calculation.BaseSalary(ref, g.Grade, s.Code)
			dto.Steps = append(dto.Steps, StepDTO{Code: s.Code, Label: s.Label, Salary: output.FormatCurrency(salary.Decimal)})
		}
		return dto
	}
	for i := range g.Steps {
		code := strconv.Itoa(i + 1)
		salary := calculation.BaseSalary(ref, g.Grade, code)
		dto.Steps = append(dto.Steps, StepDTO{Code: code, Label: "Step " + code, Salary: output.FormatCurrency(salary.Decimal)})
	}
	return dto
}

// decodeInput reads a form or JSON body into calculator input
func decodeInput(w http.ResponseWriter, r *http.Request, asOf time.Time) (domain.CalculatorInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return domain.CalculatorInput{}, fmt.Errorf("failed to parse form: %w", err)
		}
		return config.ParseURLValues(r.PostForm, asOf), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to read body: %w", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	values, err := config.FlattenRecord(raw)
	if err != nil {
		return domain.CalculatorInput{}, err
	}
	return config.ParseForm(values, asOf), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
