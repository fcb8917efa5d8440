package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
)

type HiringHandler struct {
	hiringUseCase *usecase.HiringUseCase
}

func NewHiringHandler(hiringUseCase *usecase.HiringUseCase) *HiringHandler {
	return &HiringHandler{
		hiringUseCase: hiringUseCase,
	}
}

type createHireRequestRequest struct {
	Worker   string  `json:"worker" validate:"required"`
	Position string  `json:"position" validate:"required"`
	Location string  `json:"location"`
	Salary   float64 `json:"salary" validate:"gte=0"`
}

// CreateHireRequest opens a company's employment offer to a worker.
func (h *HiringHandler) CreateHireRequest(c echo.Context) error {
	var req createHireRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)

	hire := &entity.CompanyHireRequest{
		Company:  companyID,
		Worker:   req.Worker,
		Position: req.Position,
		Location: req.Location,
		Salary:   req.Salary,
	}

	result, err := h.hiringUseCase.CreateHireRequest(c.Request().Context(), hire)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type respondHireRequestRequest struct {
	Status string `json:"status" validate:"required"`
}

// RespondHireRequest records the worker's decision on an offer.
func (h *HiringHandler) RespondHireRequest(c echo.Context) error {
	var req respondHireRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workerID := c.Get("uid").(string)

	result, err := h.hiringUseCase.RespondHireRequest(c.Request().Context(), c.Param("id"), workerID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *HiringHandler) WithdrawHireRequest(c echo.Context) error {
	companyID := c.Get("uid").(string)

	if err := h.hiringUseCase.WithdrawHireRequest(c.Request().Context(), c.Param("id"), companyID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Hire request withdrawn",
	})
}

func (h *HiringHandler) ListHireOffers(c echo.Context) error {
	workerID := c.Get("uid").(string)

	var status *entity.EngagementStatus
	if lit := c.QueryParam("status"); lit != "" {
		s, ok := entity.ParseStatusLiteral(entity.VariantCompanyHire, lit)
		if !ok {
			return response.Error(c, errors.BadRequest("Invalid status provided", nil))
		}
		status = &s
	}

	results, err := h.hiringUseCase.ListHireRequestsForWorker(c.Request().Context(), workerID, status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *HiringHandler) ListCompanyHireRequests(c echo.Context) error {
	companyID := c.Get("uid").(string)

	results, err := h.hiringUseCase.ListHireRequestsForCompany(c.Request().Context(), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

type workerApplicationRequest struct {
	FullName         string   `json:"full_name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Location         string   `json:"location"`
	Linkedin         string   `json:"linkedin"`
	Experience       int      `json:"experience" validate:"gte=0"`
	ExpectedSalary   int      `json:"expected_salary" validate:"gte=0"`
	PositionApplying string   `json:"position_applying" validate:"required"`
	PrimarySkills    []string `json:"primary_skills"`
	WorkExperience   string   `json:"work_experience"`
	Resume           string   `json:"resume"`
	CompName         string   `json:"comp_name"`
}

// CreateWorkerApplication files the worker's application to the company in
// the path.
func (h *HiringHandler) CreateWorkerApplication(c echo.Context) error {
	var req workerApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workerID := c.Get("uid").(string)

	app := &entity.WorkerApplication{
		WorkerID:         workerID,
		CompanyID:        c.Param("companyId"),
		CompName:         req.CompName,
		FullName:         req.FullName,
		Email:            req.Email,
		Location:         req.Location,
		Linkedin:         req.Linkedin,
		Experience:       req.Experience,
		ExpectedSalary:   req.ExpectedSalary,
		PositionApplying: req.PositionApplying,
		PrimarySkills:    req.PrimarySkills,
		WorkExperience:   req.WorkExperience,
		Resume:           req.Resume,
	}

	result, err := h.hiringUseCase.CreateWorkerApplication(c.Request().Context(), app)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type handleApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// HandleWorkerApplication records the company's decision on an application.
func (h *HiringHandler) HandleWorkerApplication(c echo.Context) error {
	var req handleApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)

	result, err := h.hiringUseCase.HandleWorkerApplication(c.Request().Context(), c.Param("requestId"), companyID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *HiringHandler) CancelWorkerApplication(c echo.Context) error {
	workerID := c.Get("uid").(string)

	if err := h.hiringUseCase.CancelWorkerApplication(c.Request().Context(), c.Param("id"), workerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Application cancelled",
	})
}

func (h *HiringHandler) ListMyApplications(c echo.Context) error {
	workerID := c.Get("uid").(string)

	results, err := h.hiringUseCase.ListApplicationsForWorker(c.Request().Context(), workerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *HiringHandler) ListCompanyApplications(c echo.Context) error {
	companyID := c.Get("uid").(string)

	results, err := h.hiringUseCase.ListApplicationsForCompany(c.Request().Context(), companyID, c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

type availabilityRequest struct {
	Availability string `json:"availability" validate:"required"`
}

func (h *HiringHandler) UpdateAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workerID := c.Get("uid").(string)

	if err := h.hiringUseCase.SetWorkerAvailability(c.Request().Context(), workerID, req.Availability); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"availability": req.Availability,
	})
}
