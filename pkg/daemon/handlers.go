package daemon

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/device"
	"github.com/simcoaches/trackpro/pkg/engine"
	"github.com/simcoaches/trackpro/pkg/version"
)

func getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, config.NewRawFileConfigFromConfig(conf))
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func getStatus(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, eng.Status())
}

func axisParam(c *gin.Context) (axis.Axis, bool) {
	a, err := axis.Parse(c.Param("axis"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return 0, false
	}
	return a, true
}

func writeOpResult(c *gin.Context, res engine.OpResult, err error) {
	if err != nil {
		if errors.Is(err, device.ErrUnavailable) {
			c.IndentedJSON(http.StatusServiceUnavailable, err.Error())
			_ = c.AbortWithError(http.StatusServiceUnavailable, err)
			return
		}
		if errors.Is(err, engine.ErrEmptyHistory) {
			c.IndentedJSON(http.StatusConflict, err.Error())
			_ = c.AbortWithError(http.StatusConflict, err)
			return
		}
		logrus.Errorf("calibration operation failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, res)
}

func setAxisMin(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}
	res, err := eng.SetMin(a)
	writeOpResult(c, res, err)
}

func setAxisMax(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}
	res, err := eng.SetMax(a)
	writeOpResult(c, res, err)
}

func resetCalibration(c *gin.Context) {
	res, err := eng.Reset()
	writeOpResult(c, res, err)
}

func restoreDefaults(c *gin.Context) {
	res, err := eng.RestoreDefaults()
	writeOpResult(c, res, err)
}

func restoreLast(c *gin.Context) {
	res, err := eng.RestoreLast()
	writeOpResult(c, res, err)
}

func validateAxis(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}

	err := eng.Validate(a)
	out := gin.H{
		"axis":   a.String(),
		"valid":  !errors.Is(err, axis.ErrInvalidRange),
		"narrow": errors.Is(err, axis.ErrNarrowRange),
	}
	if err != nil {
		out["message"] = err.Error()
	}
	c.IndentedJSON(http.StatusOK, out)
}

func getSamples(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}

	scale := "raw"
	if eng.Status().Calibrated {
		scale = "percent"
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"axis":   a.String(),
		"scale":  scale,
		"values": eng.Samples(a),
	})
}

func getAxisName(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, names.Get(a))
}

func setAxisName(c *gin.Context) {
	a, ok := axisParam(c)
	if !ok {
		return
	}

	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	name := strings.TrimSpace(string(b))
	if err := names.Set(a, name); err != nil {
		logrus.Errorf("failed to save axis names: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("renamed axis %s to %q", a, names.Get(a))

	c.IndentedJSON(http.StatusCreated, names.Get(a))
}
