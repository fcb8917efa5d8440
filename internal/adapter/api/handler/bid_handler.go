package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
	"buildandbeyond/pkg/utils"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

type createBidListingRequest struct {
	ProjectName     string         `json:"project_name" validate:"required"`
	ProjectAddress  string         `json:"project_address" validate:"required"`
	TotalArea       float64        `json:"total_area" validate:"required,gt=0"`
	BuildingType    string         `json:"building_type"`
	EstimatedBudget float64        `json:"estimated_budget" validate:"gte=0"`
	ProjectTimeline int            `json:"project_timeline" validate:"gte=0"`
	TotalFloors     int            `json:"total_floors"`
	Floors          []floorRequest `json:"floors"`
	Description     string         `json:"description"`
}

func (h *BidHandler) CreateBidListing(c echo.Context) error {
	var req createBidListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	floors := make([]entity.Floor, len(req.Floors))
	for i, f := range req.Floors {
		floors[i] = entity.Floor{Number: f.Number, Details: f.Details}
	}

	listing := &entity.BidListing{
		CustomerID:      customerID,
		ProjectName:     req.ProjectName,
		ProjectAddress:  req.ProjectAddress,
		TotalArea:       req.TotalArea,
		BuildingType:    req.BuildingType,
		EstimatedBudget: req.EstimatedBudget,
		ProjectTimeline: req.ProjectTimeline,
		TotalFloors:     req.TotalFloors,
		Floors:          floors,
		Description:     req.Description,
	}

	result, err := h.bidUseCase.CreateListing(c.Request().Context(), listing)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// SubmitBid takes the company bid form post and answers with a redirect
// carrying a success or error query flag instead of a JSON body.
func (h *BidHandler) SubmitBid(c echo.Context) error {
	companyID := c.Get("uid").(string)
	listingID := c.FormValue("bidId")

	price, err := strconv.ParseFloat(c.FormValue("bidPrice"), 64)
	if err != nil {
		return h.redirectWithError(c, "Invalid bid price")
	}

	if _, err := h.bidUseCase.SubmitCompanyBid(c.Request().Context(), listingID, companyID, price); err != nil {
		return h.redirectWithError(c, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, "/company/bids?success="+url.QueryEscape("Bid submitted"))
}

func (h *BidHandler) redirectWithError(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/company/bids?error="+url.QueryEscape(msg))
}

// ResolveBid settles a listing: accept answers 201 with the awarded listing,
// reject answers 200 with the closed one.
func (h *BidHandler) ResolveBid(c echo.Context) error {
	companyID := c.Get("uid").(string)
	listingID := c.Param("bidId")
	decision := c.Param("status")

	if decision != "accept" && decision != "reject" {
		return response.Error(c, errors.BadRequest("Decision must be accept or reject", nil))
	}

	result, err := h.bidUseCase.ResolveBid(c.Request().Context(), listingID, companyID, decision)
	if err != nil {
		return response.Error(c, err)
	}

	if decision == "accept" {
		return response.Created(c, result)
	}
	return response.Success(c, result)
}

func (h *BidHandler) GetListing(c echo.Context) error {
	result, err := h.bidUseCase.GetByID(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *BidHandler) ListOpenListings(c echo.Context) error {
	results, err := h.bidUseCase.ListOpenListings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	p := utils.GetPaginationParams(c)
	total := int64(len(results))

	start := p.Offset
	if start > len(results) {
		start = len(results)
	}
	end := start + p.PageSize
	if end > len(results) {
		end = len(results)
	}

	return response.Paginated(c, results[start:end], total, p.Page, p.PageSize)
}

func (h *BidHandler) ListMyListings(c echo.Context) error {
	customerID := c.Get("uid").(string)

	results, err := h.bidUseCase.ListListingsByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *BidHandler) ListCompanyBids(c echo.Context) error {
	companyID := c.Get("uid").(string)

	results, err := h.bidUseCase.ListCompanyBids(c.Request().Context(), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}
