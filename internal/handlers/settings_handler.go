package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles runtime settings HTTP requests. Secrets are
// write-only over HTTP: they can be stored sealed but never read back
// through this API.
type SettingsHandler struct {
	settingsService services.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSetting returns one plain setting
// @Summary Get setting
// @Description Return one plain setting's value. Sealed settings refuse this accessor.
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse "The setting"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing key"
// @Failure 404 {object} errors.ErrorResponse "SETTING_001 - No setting under this key"
// @Failure 409 {object} errors.ErrorResponse "SETTING_002 - Setting is sealed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings/{key} [get]
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("key is required"))
	}

	value, err := h.settingsService.Get(c.Request().Context(), key)
	if err != nil {
		return mapSettingErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettingResponse{
		Key:   key,
		Value: value,
	})
}

// UpdateSetting stores one plain setting
// @Summary Set setting
// @Description Create or replace a plain key-value setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.UpdateSettingRequest true "The value to store"
// @Success 200 {object} dto.SettingResponse "The stored setting"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings/{key} [put]
func (h *SettingsHandler) UpdateSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("key is required"))
	}

	var req dto.UpdateSettingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.settingsService.Set(c.Request().Context(), key, req.Value); err != nil {
		return mapSettingErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettingResponse{
		Key:   key,
		Value: req.Value,
	})
}

// DeleteSetting removes one setting
// @Summary Delete setting
// @Description Remove the setting stored under a key, sealed or plain
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.DeleteSettingResponse "Setting removed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing key"
// @Failure 404 {object} errors.ErrorResponse "SETTING_001 - No setting under this key"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings/{key} [delete]
func (h *SettingsHandler) DeleteSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("key is required"))
	}

	if err := h.settingsService.Delete(c.Request().Context(), key); err != nil {
		return mapSettingErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteSettingResponse{
		Message: "Setting deleted successfully",
	})
}

// SealSecret stores one setting sealed at rest
// @Summary Seal secret
// @Description Store a value sealed under the configured passphrase. Sealed values are write-only over HTTP; nothing ever returns the plaintext.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.SealSecretRequest true "The value to seal"
// @Success 200 {object} dto.SealSecretResponse "Secret sealed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 503 {object} errors.ErrorResponse "SETTING_004 - No secrets passphrase configured"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings/{key}/secret [put]
func (h *SettingsHandler) SealSecret(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("key is required"))
	}

	var req dto.SealSecretRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.settingsService.SetSecret(c.Request().Context(), key, req.Value); err != nil {
		return mapSettingErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.SealSecretResponse{
		Key:    key,
		Sealed: true,
	})
}

func mapSettingErr(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrSettingNotFound) {
		return SendError(c, errors.SettingNotFound)
	}
	if stderrors.Is(err, services.ErrSettingSealed) {
		return SendError(c, errors.SettingSealed)
	}
	if stderrors.Is(err, services.ErrPassphraseMissing) {
		return SendError(c, errors.SettingSealUnavailable)
	}
	if stderrors.Is(err, services.ErrSealBroken) {
		return SendError(c, errors.SettingSealBroken)
	}
	return SendSystemError(c, err)
}
