package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List emergency contacts
// @Description Contacts of the current user, primary first. Requires API key.
// @Tags Contacts
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Success 200 {array} EmergencyContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listContacts")

	contacts, err := h.contactService.ListContacts(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, log, err, "Failed to list emergency contacts")
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Add an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param contact body EmergencyContactRequest true "Emergency contact"
// @Success 201 {object} EmergencyContactResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Primary contact conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [post]
func (h *Handler) createContact(c *gin.Context) {
	var input EmergencyContactRequest
	log := h.logger.WithField("method", "createContact")

	if !h.bind(c, log, &input) {
		return
	}

	contact := DTOToContactModel(input)
	if err := h.contactService.CreateContact(c.Request.Context(), currentUser(c), contact); err != nil {
		h.fail(c, log, err, "Failed to create emergency contact")
		return
	}
	c.JSON(http.StatusCreated, ModelToContactResponse(contact))
}

// @Summary Update an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param id path string true "Contact ID"
// @Param contact body EmergencyContactRequest true "Emergency contact"
// @Success 200 {object} EmergencyContactResponse
// @Failure 400 {object} map[string]string "Invalid contact ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Contact belongs to another user"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 409 {object} map[string]string "Primary contact conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts/{id} [put]
func (h *Handler) updateContact(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateContact").WithField("id", id)

	var input EmergencyContactRequest
	if !h.bind(c, log, &input) {
		return
	}

	contact := DTOToContactModel(input)
	contact.ID = id
	updated, err := h.contactService.UpdateContact(c.Request.Context(), currentUser(c), contact)
	if err != nil {
		h.fail(c, log, err, "Failed to update emergency contact")
		return
	}
	c.JSON(http.StatusOK, ModelToContactResponse(updated))
}

// @Summary Delete an emergency contact
// @Tags Contacts
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid contact ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Contact belongs to another user"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteContact").WithField("id", id)

	if err := h.contactService.DeleteContact(c.Request.Context(), currentUser(c), id); err != nil {
		h.fail(c, log, err, "Failed to delete emergency contact")
		return
	}
	c.Status(http.StatusNoContent)
}
