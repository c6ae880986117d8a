package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/engine"
)

// ValidationResult is the daemon's answer to a validate request.
type ValidationResult struct {
	Axis    string `json:"axis"`
	Valid   bool   `json:"valid"`
	Narrow  bool   `json:"narrow"`
	Message string `json:"message,omitempty"`
}

// SamplesResponse carries one axis's chart buffer.
type SamplesResponse struct {
	Axis   string    `json:"axis"`
	Scale  string    `json:"scale"`
	Values []float64 `json:"values"`
}

func (c *Client) GetStatus() (*engine.Status, error) {
	ret, err := c.Get("/status")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get status")
	}

	var st engine.Status
	if err := json.Unmarshal([]byte(ret), &st); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal status")
	}
	return &st, nil
}

func (c *Client) SetMin(a axis.Axis) (*engine.OpResult, error) {
	return c.opResult("POST", "/axes/"+a.String()+"/min", "")
}

func (c *Client) SetMax(a axis.Axis) (*engine.OpResult, error) {
	return c.opResult("POST", "/axes/"+a.String()+"/max", "")
}

func (c *Client) Reset() (*engine.OpResult, error) {
	return c.opResult("POST", "/reset", "")
}

func (c *Client) RestoreDefaults() (*engine.OpResult, error) {
	return c.opResult("POST", "/restore-defaults", "")
}

func (c *Client) RestoreLast() (*engine.OpResult, error) {
	return c.opResult("POST", "/restore-last", "")
}

func (c *Client) Validate(a axis.Axis) (*ValidationResult, error) {
	ret, err := c.Get("/axes/" + a.String() + "/validate")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to validate axis %s", a)
	}

	var vr ValidationResult
	if err := json.Unmarshal([]byte(ret), &vr); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal validation result")
	}
	return &vr, nil
}

func (c *Client) GetSamples(a axis.Axis) (*SamplesResponse, error) {
	ret, err := c.Get("/samples/" + a.String())
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get samples for axis %s", a)
	}

	var sr SamplesResponse
	if err := json.Unmarshal([]byte(ret), &sr); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal samples")
	}
	return &sr, nil
}

func (c *Client) GetAxisName(a axis.Axis) (string, error) {
	ret, err := c.Get("/axes/" + a.String() + "/name")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get name of axis %s", a)
	}
	// Remove "" around JSON string. I don't want to use a JSON decoder just for this.
	ret = ret[1 : len(ret)-1]
	return ret, nil
}

func (c *Client) SetAxisName(a axis.Axis, name string) (string, error) {
	return c.Put("/axes/"+a.String()+"/name", name)
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}
	return &conf, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	ret = ret[1 : len(ret)-1] // remove the surrounding quotes
	return ret, nil
}

func (c *Client) opResult(method, path, data string) (*engine.OpResult, error) {
	ret, err := c.Send(method, path, data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "request %s %s failed", method, path)
	}

	var res engine.OpResult
	if err := json.Unmarshal([]byte(ret), &res); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal operation result")
	}
	return &res, nil
}
