package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/resepmakanan/v1/internal/application/chat"
	"github.com/resepmakanan/v1/internal/application/nutrition"
	"github.com/resepmakanan/v1/internal/domain/recipe"
	"github.com/resepmakanan/v1/internal/domain/units"
	"github.com/resepmakanan/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

const indonesianPicksLimit = 6

// recipeCard is the list/grid view of a recipe
type recipeCard struct {
	Recipe   *recipe.Recipe
	ImageURL string
}

// ingredientRow is one converted, scaled ingredient line on the
// detail page
type ingredientRow struct {
	Item   string
	Amount float64
	Unit   string
}

func (s *WebServer) cards(recipes []*recipe.Recipe) []recipeCard {
	out := make([]recipeCard, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeCard{Recipe: r, ImageURL: s.resolver.DisplayURL(r.Thumbnail)})
	}
	return out
}

// handleHome renders the landing page
func (s *WebServer) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := s.recipes.Featured(ctx, s.config.Catalog.FeaturedLimit)
	if err != nil {
		s.renderError(w, "Gagal memuat resep unggulan", err)
		return
	}
	picks, err := s.recipes.ByCuisine(ctx, recipe.CuisineIndonesia, indonesianPicksLimit)
	if err != nil {
		s.renderError(w, "Gagal memuat resep nusantara", err)
		return
	}
	categories, err := s.recipes.Categories(ctx)
	if err != nil {
		s.renderError(w, "Gagal memuat kategori", err)
		return
	}

	s.renderTemplate(w, "home", map[string]interface{}{
		"Title":      s.config.App.Name + " - Resep Masakan Nusantara",
		"Featured":   s.cards(featured),
		"Picks":      s.cards(picks),
		"Categories": categories,
	})
}

func browseQueryFromRequest(r *http.Request) inbound.BrowseQuery {
	return inbound.BrowseQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Sort:     r.URL.Query().Get("sort"),
	}
}

// handleRecipeList renders the browse page with filtering and sorting
func (s *WebServer) handleRecipeList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := browseQueryFromRequest(r)

	recipes, err := s.recipes.Browse(ctx, query)
	if err != nil {
		s.renderError(w, "Gagal memuat daftar resep", err)
		return
	}
	categories, err := s.recipes.Categories(ctx)
	if err != nil {
		s.renderError(w, "Gagal memuat kategori", err)
		return
	}

	category := query.Category
	if category == "" {
		category = recipe.CategoryAll
	}

	s.renderTemplate(w, "recipes", map[string]interface{}{
		"Title":      "Jelajahi Resep - " + s.config.App.Name,
		"Recipes":    s.cards(recipes),
		"Categories": categories,
		"Category":   category,
		"Search":     query.Search,
		"Sort":       query.Sort,
		"Count":      len(recipes),
	})
}

// handleHTMXRecipeSearch returns just the result grid for live search
func (s *WebServer) handleHTMXRecipeSearch(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.Browse(r.Context(), browseQueryFromRequest(r))
	if err != nil {
		s.logger.Error("recipe search failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "recipe-grid", map[string]interface{}{
		"Recipes": s.cards(recipes),
		"Count":   len(recipes),
	})
}

// handleRecipeDetail renders one recipe with scaled, converted
// ingredient measurements and the cook timer panel
func (s *WebServer) handleRecipeDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	found, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			s.handleNotFound(w, r)
			return
		}
		s.renderError(w, "Gagal memuat resep", err)
		return
	}

	system := units.ParseSystem(r.URL.Query().Get("units"))
	multiplier, _ := strconv.Atoi(r.URL.Query().Get("servings"))
	if multiplier < 1 {
		multiplier = 1
	}

	rows := make([]ingredientRow, 0, len(found.Ingredients))
	for _, ing := range found.Ingredients {
		m := units.Convert(units.Scale(ing.Amount, multiplier), ing.Unit, system)
		rows = append(rows, ingredientRow{Item: ing.Item, Amount: m.Amount, Unit: m.Unit})
	}

	related, err := s.recipes.Related(ctx, found, s.config.Catalog.RelatedLimit)
	if err != nil {
		s.renderError(w, "Gagal memuat resep terkait", err)
		return
	}

	s.renderTemplate(w, "recipe-detail", map[string]interface{}{
		"Title":       found.Title + " - " + s.config.App.Name,
		"Recipe":      found,
		"ImageURL":    s.resolver.DisplayURL(found.Thumbnail),
		"Ingredients": rows,
		"System":      string(system),
		"Multiplier":  multiplier,
		"Servings":    found.ScaledServings(multiplier),
		"Related":     s.cards(related),
		"Timer":       s.countdown.Snapshot(),
	})
}

// handleNotFound renders the 404 page
func (s *WebServer) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	s.renderTemplate(w, "not-found", map[string]interface{}{
		"Title": "Resep Tidak Ditemukan - " + s.config.App.Name,
	})
}

// --- cook timer fragments ---

func (s *WebServer) renderTimer(w http.ResponseWriter) {
	s.renderTemplate(w, "timer", map[string]interface{}{
		"Timer": s.countdown.Snapshot(),
	})
}

// handleHTMXTimerStart starts (or replaces) the countdown
func (s *WebServer) handleHTMXTimerStart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	seconds, err := strconv.Atoi(r.PostFormValue("seconds"))
	if err != nil || seconds <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// The loop outlives this request; it is cancelled by Stop, expiry
	// or server shutdown, not by the request context.
	s.countdown.Start(context.Background(), seconds)
	s.renderTimer(w)
}

// handleHTMXTimerStop cancels the countdown
func (s *WebServer) handleHTMXTimerStop(w http.ResponseWriter, r *http.Request) {
	s.countdown.Stop()
	s.renderTimer(w)
}

// handleHTMXTimerStatus serves the 1-second poll from the detail page
func (s *WebServer) handleHTMXTimerStatus(w http.ResponseWriter, r *http.Request) {
	s.renderTimer(w)
}

// --- chat fragments ---

func (s *WebServer) renderChat(w http.ResponseWriter, inputError string) {
	s.renderTemplate(w, "chat", map[string]interface{}{
		"Transcript": s.chat.Transcript(),
		"Pending":    s.chat.Pending(),
		"InputError": inputError,
	})
}

// handleHTMXChatTranscript returns the current chat widget state
func (s *WebServer) handleHTMXChatTranscript(w http.ResponseWriter, r *http.Request) {
	s.renderChat(w, "")
}

// handleHTMXChatSend submits ingredient text to the kitchen assistant
func (s *WebServer) handleHTMXChatSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	input := r.PostFormValue("message")
	if utf8.RuneCountInString(input) > s.config.Chat.MaxInputRunes {
		w.WriteHeader(http.StatusBadRequest)
		s.renderChat(w, "Pesan terlalu panjang.")
		return
	}

	_, err := s.chat.Send(r.Context(), input)
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		w.WriteHeader(http.StatusBadRequest)
		s.renderChat(w, "Tulis dulu bahan yang ada di dapur Anda ya.")
		return
	case errors.Is(err, chat.ErrRequestPending):
		w.WriteHeader(http.StatusTooManyRequests)
		s.renderChat(w, "Sabar ya, jawaban sebelumnya masih diproses.")
		return
	}

	s.renderChat(w, "")
}

// --- recipe builder fragments ---

// syncDraft rebuilds the draft's rows from the posted form. Every row
// is present in each submission, so the lists are replaced wholesale;
// unparseable numbers count as zero rather than failing the request.
func (s *WebServer) syncDraft(r *http.Request) {
	s.draft.Title = strings.TrimSpace(r.PostFormValue("title"))
	s.draft.Category = r.PostFormValue("category")

	items := r.PostForm["item"]
	amounts := r.PostForm["amount"]
	unitNames := r.PostForm["unit"]
	preps := r.PostForm["prep"]

	ingredients := make([]recipe.Ingredient, len(items))
	for i := range items {
		ing := recipe.Ingredient{Item: strings.TrimSpace(items[i]), Unit: "g"}
		if i < len(amounts) {
			if v, err := strconv.ParseFloat(amounts[i], 64); err == nil && v >= 0 {
				ing.Amount = v
			}
		}
		if i < len(unitNames) && unitNames[i] != "" {
			ing.Unit = unitNames[i]
		}
		if i < len(preps) {
			if v, err := strconv.Atoi(preps[i]); err == nil && v > 0 {
				ing.PrepTimeSeconds = v
			}
		}
		ingredients[i] = ing
	}
	s.draft.Ingredients = ingredients

	steps := r.PostForm["step"]
	instructions := make([]recipe.Instruction, len(steps))
	for i, text := range steps {
		instructions[i] = recipe.Instruction{Step: i + 1, Text: strings.TrimSpace(text)}
	}
	s.draft.Instructions = instructions
}

func (s *WebServer) renderBuilderForm(w http.ResponseWriter) {
	s.renderTemplate(w, "builder-form", map[string]interface{}{
		"Draft":       s.draft,
		"Nutrition":   nutrition.Estimate(s.draft.Ingredients),
		"PrepMinutes": nutrition.TotalPrepMinutes(s.draft.Ingredients),
	})
}

// handleBuilderPage renders the recipe builder
func (s *WebServer) handleBuilderPage(w http.ResponseWriter, r *http.Request) {
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	categories, err := s.recipes.Categories(r.Context())
	if err != nil {
		s.renderError(w, "Gagal memuat kategori", err)
		return
	}

	s.renderTemplate(w, "builder", map[string]interface{}{
		"Title":       "Buat Resep - " + s.config.App.Name,
		"Draft":       s.draft,
		"Categories":  categories,
		"Nutrition":   nutrition.Estimate(s.draft.Ingredients),
		"PrepMinutes": nutrition.TotalPrepMinutes(s.draft.Ingredients),
	})
}

func (s *WebServer) handleHTMXBuilderAddIngredient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)
	s.draft.AddIngredient()
	s.renderBuilderForm(w)
}

func (s *WebServer) handleHTMXBuilderRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)
	s.draft.RemoveIngredient(index)
	s.renderBuilderForm(w)
}

func (s *WebServer) handleHTMXBuilderAddInstruction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)
	s.draft.AddInstruction()
	s.renderBuilderForm(w)
}

func (s *WebServer) handleHTMXBuilderRemoveInstruction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)
	s.draft.RemoveInstruction(index)
	s.renderBuilderForm(w)
}

// handleHTMXBuilderEstimate recomputes the nutrition panel from the
// current form state
func (s *WebServer) handleHTMXBuilderEstimate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)
	s.renderBuilderForm(w)
}

// builderInput mirrors the publishable subset of the draft for
// validation
type builderInput struct {
	Title    string `validate:"required,min=3,max=120"`
	Category string `validate:"required"`
}

// handleHTMXBuilderPublish validates the draft and shows a preview
// confirmation. The draft is a sandbox; nothing is written back into
// the catalog.
func (s *WebServer) handleHTMXBuilderPublish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.draftMu.Lock()
	defer s.draftMu.Unlock()

	s.syncDraft(r)

	input := builderInput{Title: s.draft.Title, Category: s.draft.Category}
	if err := s.validate.Struct(input); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderTemplate(w, "builder-publish", map[string]interface{}{
			"Error": "Lengkapi judul (minimal 3 huruf) dan kategori resep dulu ya.",
		})
		return
	}

	s.renderTemplate(w, "builder-publish", map[string]interface{}{
		"Draft":       s.draft,
		"Nutrition":   nutrition.Estimate(s.draft.Ingredients),
		"PrepMinutes": nutrition.TotalPrepMinutes(s.draft.Ingredients),
	})
}

// --- health endpoints ---

func (s *WebServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": s.config.App.Name,
		"version": s.config.App.Version,
	})
}

func (s *WebServer) handleReadinessCheck(w http.ResponseWriter, r *http.Request) {
	// The catalog is seeded at startup; reachable categories mean the
	// service can serve every page.
	if _, err := s.recipes.Categories(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
