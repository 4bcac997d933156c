package api

import (
	"net/http"

	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountCodeHandler struct {
	cmds commands.DiscountCodeCommands
	q    queries.DiscountCodeQueries
}

func NewDiscountCodeHandler(cmds commands.DiscountCodeCommands, q queries.DiscountCodeQueries) *DiscountCodeHandler {
	return &DiscountCodeHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse
// @Router /coupons [get]
func (h *DiscountCodeHandler) ListCoupons(c *gin.Context) {
	p, ok := listParams(c, queries.CouponResource)
	if !ok {
		return
	}
	page, err := h.q.ListCoupons(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.CouponResource.Name, page)
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *DiscountCodeHandler) GetCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCoupon(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("coupon", view))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Router /coupons [post]
func (h *DiscountCodeHandler) CreateCoupon(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateCoupon(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetCoupon(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/coupons/"+id.String())
	c.JSON(http.StatusCreated, resdto.NewDataResponse("coupon", view))
}

// @Summary Update coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Fields to change"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [patch]
func (h *DiscountCodeHandler) UpdateCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := h.cmds.UpdateCoupon(c.Request.Context(), id, patch); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetCoupon(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("coupon", view))
}

// @Summary Delete coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *DiscountCodeHandler) DeleteCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCoupon(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List affiliate codes
// @Tags affiliate-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse
// @Router /affiliate-codes [get]
func (h *DiscountCodeHandler) ListAffiliateCodes(c *gin.Context) {
	p, ok := listParams(c, queries.AffiliateCodeResource)
	if !ok {
		return
	}
	page, err := h.q.ListAffiliateCodes(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.AffiliateCodeResource.Name, page)
}

// @Summary Get affiliate code
// @Tags affiliate-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Affiliate code ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /affiliate-codes/{id} [get]
func (h *DiscountCodeHandler) GetAffiliateCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetAffiliateCode(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("affiliateCode", view))
}

// @Summary Create affiliate code
// @Tags affiliate-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAffiliateCodeRequest true "Affiliate code"
// @Success 201 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Router /affiliate-codes [post]
func (h *DiscountCodeHandler) CreateAffiliateCode(c *gin.Context) {
	var req reqdto.CreateAffiliateCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateAffiliate(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetAffiliateCode(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/affiliate-codes/"+id.String())
	c.JSON(http.StatusCreated, resdto.NewDataResponse("affiliateCode", view))
}

// @Summary Update affiliate code
// @Tags affiliate-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Affiliate code ID"
// @Param request body reqdto.UpdateAffiliateCodeRequest true "Fields to change"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /affiliate-codes/{id} [patch]
func (h *DiscountCodeHandler) UpdateAffiliateCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAffiliateCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := h.cmds.UpdateAffiliate(c.Request.Context(), id, patch); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetAffiliateCode(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("affiliateCode", view))
}

// @Summary Delete affiliate code
// @Tags affiliate-codes
// @Security BearerAuth
// @Param id path string true "Affiliate code ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /affiliate-codes/{id} [delete]
func (h *DiscountCodeHandler) DeleteAffiliateCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteAffiliate(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
