package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"termotrack/pkg/common"
	"termotrack/pkg/models"
	"termotrack/pkg/termo"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// Caller identity comes from the auth proxy in front of this service;
// authentication itself is out of scope here.
const (
	HeaderOperator      = "X-Operator"
	HeaderOperatorAdmin = "X-Operator-Admin"
)

func operatorIdentity(c *gin.Context) (termo.Identity, bool) {
	name := c.GetHeader(HeaderOperator)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + HeaderOperator + " header"})
		return termo.Identity{}, false
	}
	return termo.Identity{
		Name:        name,
		CanBackdate: c.GetHeader(HeaderOperatorAdmin) == "true",
	}, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, termo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, termo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, err)
	}
}

type VerificationRequest struct {
	Current    *float64 `json:"current"`
	Max        *float64 `json:"max"`
	Min        *float64 `json:"min"`
	NoteCode   string   `json:"note_code"`
	NoteText   string   `json:"note_text"`
	RecordedBy string   `json:"recorded_by"`
	RecordedAt string   `json:"recorded_at"`
}

var verificationRequestSchema = z.Struct(z.Shape{
	"Current":    z.Ptr(z.Float64()),
	"Max":        z.Ptr(z.Float64()),
	"Min":        z.Ptr(z.Float64()),
	"NoteCode":   z.String(),
	"NoteText":   z.String(),
	"RecordedBy": z.String(),
	"RecordedAt": z.String(),
})

func (rs *RestfulServer) PostVerification(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	if !rs.CheckThermometerLimiter(thermometerID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	who, ok := operatorIdentity(c)
	if !ok {
		return
	}

	var req VerificationRequest
	if err := verificationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	// snapshot "now" once so boundary checks inside one request agree
	now := time.Now().UTC()

	result, err := rs.Termo.Verification.Submit(thermometerID, termo.SubmitInput{
		Current:    req.Current,
		Max:        req.Max,
		Min:        req.Min,
		NoteCode:   models.NoteCode(req.NoteCode),
		NoteText:   req.NoteText,
		RecordedBy: req.RecordedBy,
		RecordedAt: req.RecordedAt,
	}, who, now)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if result.Amended {
		c.JSON(http.StatusOK, result.Verification)
		return
	}
	c.JSON(http.StatusCreated, result.Verification)
}

func (rs *RestfulServer) GetVerifications(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	verifications, err := rs.Termo.Verification.History(thermometerID, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifications)
}

func (rs *RestfulServer) EditVerification(c *gin.Context) {
	verificationID, ok := pathID(c, "verification_id")
	if !ok {
		return
	}

	who, ok := operatorIdentity(c)
	if !ok {
		return
	}
	if !who.CanBackdate {
		c.JSON(http.StatusForbidden, gin.H{"error": "editing verifications requires admin"})
		return
	}

	var req VerificationRequest
	if err := verificationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	verification, err := rs.Termo.Verification.Edit(verificationID, termo.EditInput{
		Current:    req.Current,
		Max:        req.Max,
		Min:        req.Min,
		NoteCode:   models.NoteCode(req.NoteCode),
		NoteText:   req.NoteText,
		RecordedBy: req.RecordedBy,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verification)
}

func (rs *RestfulServer) DeleteVerification(c *gin.Context) {
	verificationID, ok := pathID(c, "verification_id")
	if !ok {
		return
	}

	who, ok := operatorIdentity(c)
	if !ok {
		return
	}
	if !who.CanBackdate {
		c.JSON(http.StatusForbidden, gin.H{"error": "deleting verifications requires admin"})
		return
	}

	if err := rs.Termo.Verification.Delete(verificationID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type ThermometerRequest struct {
	Sector      string `json:"sector"`
	Equipment   string `json:"equipment"`
	Spec        string `json:"spec"`
	Tag         string `json:"tag"`
	StandardTag string `json:"standard_tag"`
}

var thermometerRequestSchema = z.Struct(z.Shape{
	"Sector":      z.String().Required(),
	"Equipment":   z.String().Required(),
	"Spec":        z.String(),
	"Tag":         z.String().Required(),
	"StandardTag": z.String(),
})

func (rs *RestfulServer) CreateThermometer(c *gin.Context) {
	if _, ok := operatorIdentity(c); !ok {
		return
	}

	var req ThermometerRequest
	if err := thermometerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	thermometer, err := rs.Termo.Thermometer.Create(termo.ThermometerInput{
		Sector:      req.Sector,
		Equipment:   req.Equipment,
		Spec:        req.Spec,
		Tag:         req.Tag,
		StandardTag: req.StandardTag,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, thermometer)
}

func (rs *RestfulServer) ListThermometers(c *gin.Context) {
	thermometers, err := rs.Termo.Thermometer.List(c.Query("sector"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thermometers)
}

func (rs *RestfulServer) GetThermometer(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	thermometer, err := rs.Termo.Thermometer.Get(thermometerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thermometer)
}

func (rs *RestfulServer) UpdateThermometer(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	who, ok := operatorIdentity(c)
	if !ok {
		return
	}
	if !who.CanBackdate {
		c.JSON(http.StatusForbidden, gin.H{"error": "editing thermometers requires admin"})
		return
	}

	var req ThermometerRequest
	if err := thermometerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	thermometer, err := rs.Termo.Thermometer.Update(thermometerID, termo.ThermometerInput{
		Sector:      req.Sector,
		Equipment:   req.Equipment,
		Spec:        req.Spec,
		Tag:         req.Tag,
		StandardTag: req.StandardTag,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, thermometer)
}

func (rs *RestfulServer) DeleteThermometer(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	who, ok := operatorIdentity(c)
	if !ok {
		return
	}
	if !who.CanBackdate {
		c.JSON(http.StatusForbidden, gin.H{"error": "deleting thermometers requires admin"})
		return
	}

	if err := rs.Termo.Thermometer.Delete(thermometerID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetSectors(c *gin.Context) {
	sectors, err := rs.Termo.Thermometer.Sectors()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

func (rs *RestfulServer) GetDashboardAlerts(c *gin.Context) {
	thermometers, err := rs.Termo.Thermometer.List(c.Query("sector"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ids := common.Mapper(thermometers, func(t models.Thermometer) uint { return t.ID })

	now := time.Now().UTC()
	alerts, err := rs.Termo.Alert.Classify(ids, now)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetChart(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	chart, err := rs.Termo.Stats.Chart(thermometerID, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (rs *RestfulServer) GetMonthlyStats(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	stats, err := rs.Termo.Stats.Monthly(thermometerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	thermometerID, ok := pathID(c, "thermometer_id")
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(thermometerID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
