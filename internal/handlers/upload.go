// internal/handlers/upload.go
package handlers

import (
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

type fileUploadResult struct {
	Filename string                 `json:"filename"`
	Upload   *services.UploadResult `json:"upload,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// POST /admin/uploads/images accepts one or more files under "files" and
// uploads them sequentially, reporting success or failure per file.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Multipart form data is required", err.Error())
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.BadRequestResponse(c, "At least one file is required under the files field", nil)
		return
	}

	options := h.storageService.GetDefaultUploadOptions("images")
	results := make([]fileUploadResult, 0, len(headers))

	for _, header := range headers {
		results = append(results, h.uploadOne(header, options))
	}

	utils.CreatedResponse(c, results)
}

func (h *UploadHandler) uploadOne(header *multipart.FileHeader, options services.UploadOptions) fileUploadResult {
	result := fileUploadResult{Filename: header.Filename}

	file, err := header.Open()
	if err != nil {
		result.Error = "failed to open file"
		return result
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		result.Error = err.Error()
		return result
	}

	upload, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Upload = upload
	return result
}

// POST /admin/uploads/documents
func (h *UploadHandler) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "A file field is required", err.Error())
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadFile(file, header, h.storageService.GetDefaultUploadOptions("documents"))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}

// GET /admin/uploads/presign hands out a time-limited download link for a
// stored object, looked up by its public URL.
func (h *UploadHandler) PresignFile(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		utils.BadRequestResponse(c, "A url query parameter is required", nil)
		return
	}

	expiration := 15 * time.Minute
	if raw := c.Query("expires_in"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 1 || minutes > 60 {
			utils.BadRequestResponse(c, "expires_in must be between 1 and 60 minutes", nil)
			return
		}
		expiration = time.Duration(minutes) * time.Minute
	}

	signed, err := h.storageService.PresignByPublicURL(url, expiration)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"url":        signed,
		"expires_in": int(expiration.Seconds()),
	})
}

// DELETE /admin/uploads
func (h *UploadHandler) DeleteFile(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "A url field is required", err.Error())
		return
	}

	if err := h.storageService.DeleteByPublicURL(req.URL); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "File deleted"})
}
