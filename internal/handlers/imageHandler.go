package handlers

import (
	"net/http"
	"os"

	utility "elastica/internal/utility"
	httpClient "elastica/internal/utility/http"
)

// UploadImage stores an admin-form image on the media bucket and returns
// the secure URL the product and category forms consume.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		http.Error(w, "No image provided", http.StatusBadRequest)
		return
	}
	fileHeader := files[0]

	directory := r.FormValue("directory")
	if directory != "categories" {
		directory = "products"
	}
	id := r.FormValue("id")
	if id == "" {
		id = "misc"
	}

	var url string
	if os.Getenv("MEDIA_DRIVER") == "r2" {
		url, err = utility.SaveImageToCloudFlare(fileHeader, fileHeader.Filename, id, directory)
	} else {
		url, err = utility.SaveImageToFile(fileHeader, fileHeader.Filename, id, directory)
	}
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Failed to save image", err)
		return
	}

	httpClient.RespondSuccess(w, map[string]string{"url": url})
}
