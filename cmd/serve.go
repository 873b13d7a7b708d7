package cmd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"annoscape/analyze"
	"annoscape/constants"
	"annoscape/model"
	"annoscape/source"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetServeAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func annotationFromPayload(namespace string, duration float64, events []model.EventPayload) *model.Annotation {
	ann := &model.Annotation{Namespace: namespace, Duration: duration}
	for _, p := range events {
		ann.Append(model.Event{
			Start: p.Start,
			End:   p.End,
			Value: model.Value{
				Label:      p.Label,
				Role:       p.Role,
				Source:     p.Source,
				SourceTime: p.SourceTime,
				SNR:        p.SNR,
				Confidence: p.Confidence,
			},
		})
	}
	return ann
}

func payloadsFromEvents(events []model.Event) []model.EventPayload {
	res := make([]model.EventPayload, 0, len(events))
	for _, ev := range events {
		res = append(res, model.EventPayload{
			Start:      ev.Start,
			End:        ev.End,
			Label:      ev.Value.Label,
			Role:       ev.Value.Role,
			Source:     ev.Value.Source,
			SourceTime: ev.Value.SourceTime,
			SNR:        ev.Value.SNR,
			Confidence: ev.Value.Confidence,
		})
	}
	return res
}

func HandlePolyphony(w http.ResponseWriter, r *http.Request) {
	var input model.PolyphonyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ann := annotationFromPayload(constants.NamespaceSoundEvent, input.Duration, input.Events)
	p, err := analyze.MaxPolyphony(ann)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(model.PolyphonyResponse{Polyphony: p})
}

func HandleCrop(w http.ResponseWriter, r *http.Request) {
	var input model.CropRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	namespace := input.Namespace
	if namespace == "" {
		namespace = constants.NamespaceSoundEvent
	}
	ann := annotationFromPayload(namespace, input.Duration, input.Events)
	out, err := analyze.Crop(ann, input.Crop)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(model.CropResponse{
		Duration: out.Duration,
		Events:   payloadsFromEvents(out.Events),
	})
}

func HandleLabels(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing folder query parameter"))
		return
	}

	labels, err := source.Labels(folder)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	json.NewEncoder(w).Encode(model.LabelsResponse{Labels: labels})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/polyphony", HandlePolyphony).Methods("POST")
	router.HandleFunc("/crop", HandleCrop).Methods("POST")
	router.HandleFunc("/labels", HandleLabels).Methods("GET")

	handler := cors.Default().Handler(router)
	logrus.Infof("serving on %v", serveAddr)
	logrus.Fatal(http.ListenAndServe(serveAddr, handler))
}
