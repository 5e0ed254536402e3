package discovery

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/rules"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/geo"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/photos"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/scoring"
)

const (
	defaultPageSize  = 20
	maxPageSize      = 50
	defaultPoolLimit = 500
)

type Repository interface {
	GetRequester(ctx context.Context, userID int64) (model.Profile, model.Preference, error)
	ListCandidates(ctx context.Context, requesterID int64, limit int) ([]model.Candidate, error)
}

type PremiumResolver interface {
	IsPremiumActive(ctx context.Context, userID int64, at time.Time) (bool, error)
}

type PhotoURLSigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type MatchEventEmitter interface {
	EmitMutualMatch(requesterID, candidateID int64, at time.Time)
}

type StatsCache interface {
	Get(ctx context.Context, userID int64) (Stats, bool, error)
	Set(ctx context.Context, userID int64, stats Stats, ttl time.Duration) error
}

type Config struct {
	NearRadiusKM     float64
	OnlineWindow     time.Duration
	NewProfileWindow time.Duration
	DefaultPageSize  int
	MaxPageSize      int
	PoolLimit        int
	MaxConcurrency   int
	PhotoURLTTL      time.Duration
	StatsCacheTTL    time.Duration
	DefaultIsPremium bool
}

type Service struct {
	repo       Repository
	scorer     *scoring.Scorer
	policy     *photos.Policy
	premium    PremiumResolver
	photoSign  PhotoURLSigner
	events     MatchEventEmitter
	statsCache StatsCache
	cfg        Config
	now        func() time.Time
}

type Stats struct {
	New         int
	Today       int
	Mine        int
	Near        int
	More        int
	Total       int
	Unviewed    int
	MutualLikes int
	LastUpdated time.Time
}

func NewService(repo Repository, scorer *scoring.Scorer, policy *photos.Policy, cfg Config) *Service {
	if cfg.NearRadiusKM <= 0 {
		cfg.NearRadiusKM = 50
	}
	if cfg.OnlineWindow <= 0 {
		cfg.OnlineWindow = 5 * time.Minute
	}
	if cfg.NewProfileWindow <= 0 {
		cfg.NewProfileWindow = 7 * 24 * time.Hour
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = maxPageSize
	}
	if cfg.PoolLimit <= 0 {
		cfg.PoolLimit = defaultPoolLimit
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = runtime.GOMAXPROCS(0)
	}
	if cfg.PhotoURLTTL <= 0 {
		cfg.PhotoURLTTL = 5 * time.Minute
	}
	if cfg.StatsCacheTTL <= 0 {
		cfg.StatsCacheTTL = time.Minute
	}

	return &Service{
		repo:   repo,
		scorer: scorer,
		policy: policy,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *Service) AttachPremium(resolver PremiumResolver) {
	s.premium = resolver
}

func (s *Service) AttachPhotoSigner(signer PhotoURLSigner) {
	s.photoSign = signer
}

func (s *Service) AttachEvents(emitter MatchEventEmitter) {
	s.events = emitter
}

func (s *Service) AttachStatsCache(cache StatsCache) {
	s.statsCache = cache
}

// Discover runs the full pipeline: filter, score, bucketize, resolve
// photo access, then sort and paginate into the response envelope.
func (s *Service) Discover(ctx context.Context, userID int64, criteria Criteria) (MatchList, error) {
	if userID <= 0 {
		return MatchList{}, ErrValidation
	}
	if s.repo == nil || s.scorer == nil || s.policy == nil {
		return MatchList{}, fmt.Errorf("discovery dependencies are not configured")
	}
	if err := criteria.Validate(); err != nil {
		return MatchList{}, err
	}

	size := clampSize(criteria.Size, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	now := s.now().UTC()

	requester, pref, err := s.repo.GetRequester(ctx, userID)
	if err != nil {
		return MatchList{}, err
	}

	isPremium, err := s.resolvePremium(ctx, userID, now)
	if err != nil {
		return MatchList{}, err
	}

	pool, err := s.repo.ListCandidates(ctx, userID, s.cfg.PoolLimit)
	if err != nil {
		return MatchList{}, fmt.Errorf("list candidate pool: %w", err)
	}

	kept, skipped := applyFilters(pool, requester, pref, criteria, now, s.cfg.OnlineWindow)
	results := s.buildResults(ctx, requester, pref, kept, isPremium, now)
	s.emitMutualLikes(userID, kept, now)

	results = s.applyScoreThreshold(results, pref, criteria.Category)
	if criteria.Category != "" {
		results = filterByBucket(results, criteria.Category)
	}

	sorted := sortResults(results, criteria.SortBy, criteria.SortOrder)
	return paginate(sorted, criteria.Category, criteria.Page, size, skipped), nil
}

// Stats counts every bucket membership independently for the summary
// dashboard. Results are cached briefly when a cache is attached.
func (s *Service) Stats(ctx context.Context, userID int64) (Stats, error) {
	if userID <= 0 {
		return Stats{}, ErrValidation
	}
	if s.repo == nil || s.scorer == nil {
		return Stats{}, fmt.Errorf("discovery dependencies are not configured")
	}

	if s.statsCache != nil {
		if cached, ok, err := s.statsCache.Get(ctx, userID); err == nil && ok {
			return cached, nil
		}
	}

	now := s.now().UTC()
	requester, pref, err := s.repo.GetRequester(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	pool, err := s.repo.ListCandidates(ctx, userID, s.cfg.PoolLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("list candidate pool: %w", err)
	}

	kept, _ := applyFilters(pool, requester, pref, Criteria{}, now, s.cfg.OnlineWindow)

	stats := Stats{Total: len(kept), LastUpdated: now}
	for _, candidate := range kept {
		distance := geo.DistanceBetween(requester.Lat, requester.Lon, candidate.Profile.Lat, candidate.Profile.Lon)
		buckets := bucketsFor(candidate, distance, now, s.cfg)
		if hasBucket(buckets, enums.CategoryNew) {
			stats.New++
		}
		if hasBucket(buckets, enums.CategoryToday) {
			stats.Today++
		}
		if hasBucket(buckets, enums.CategoryMine) {
			stats.Mine++
		}
		if hasBucket(buckets, enums.CategoryNear) {
			stats.Near++
		}
		if hasBucket(buckets, enums.CategoryMore) {
			stats.More++
		}
		if !candidate.Interaction.Viewed {
			stats.Unviewed++
		}
		if candidate.Interaction.Matched {
			stats.MutualLikes++
		}
	}

	if s.statsCache != nil {
		_ = s.statsCache.Set(ctx, userID, stats, s.cfg.StatsCacheTTL)
	}

	return stats, nil
}

// buildResults scores and resolves candidates concurrently. Each slot
// in the output slice is owned by exactly one worker, so no locking is
// needed; the final sort re-establishes deterministic order.
func (s *Service) buildResults(ctx context.Context, requester model.Profile, pref model.Preference, kept []model.Candidate, isPremium bool, now time.Time) []MatchResult {
	results := make([]MatchResult, len(kept))

	concurrency := s.cfg.MaxConcurrency
	if concurrency > len(kept) {
		concurrency = len(kept)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i := range kept {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = s.buildResult(ctx, requester, pref, kept[idx], isPremium, now)
		}(i)
	}
	wg.Wait()

	return results
}

func (s *Service) buildResult(ctx context.Context, requester model.Profile, pref model.Preference, candidate model.Candidate, isPremium bool, now time.Time) MatchResult {
	profile := candidate.Profile
	distance := geo.DistanceBetween(requester.Lat, requester.Lon, profile.Lat, profile.Lon)
	score, breakdown := s.scorer.Score(requester, pref, profile, now)
	buckets := bucketsFor(candidate, distance, now, s.cfg)
	decisions, isBlocked := s.policy.ResolveAlbum(profile.Photos, isPremium, candidate.Interaction)

	return MatchResult{
		UserID:       profile.UserID,
		DisplayName:  profile.DisplayName,
		Age:          rules.AgeAt(profile.Birthdate, now),
		City:         profile.City,
		Score:        score,
		ScorePercent: scoring.Percent(score),
		Breakdown:    breakdown,
		Buckets:      buckets,
		DistanceKM:   distance,
		Photos:       toPhotoViews(decisions, s.signVisible(ctx, decisions)),
		Actions: ActionFlags{
			CanLike:  !isBlocked && !candidate.Interaction.Liked && !candidate.Interaction.Matched,
			CanChat:  !isBlocked && (candidate.Interaction.Matched || candidate.Interaction.HasMessageThread),
			CanBlock: !isBlocked,
		},
		IsBlocked: isBlocked,
		CreatedAt: profile.CreatedAt,
		MatchedAt: candidate.Interaction.MatchedAt,
	}
}

func (s *Service) signVisible(ctx context.Context, decisions []photos.Decision) map[int]*string {
	if s.photoSign == nil {
		return nil
	}

	urls := make(map[int]*string, len(decisions))
	for _, decision := range decisions {
		if !decision.Visible || decision.Blurred || decision.Key == "" {
			continue
		}
		url, err := s.photoSign.PresignGet(ctx, decision.Key, s.cfg.PhotoURLTTL)
		if err != nil || url == "" {
			continue
		}
		value := url
		urls[decision.Slot] = &value
	}
	return urls
}

// emitMutualLikes hands a "mutual match formed" signal to the event
// dispatcher for pairs that both liked each other but have no recorded
// match yet. Persisting the match is the caller's responsibility.
func (s *Service) emitMutualLikes(requesterID int64, kept []model.Candidate, now time.Time) {
	if s.events == nil {
		return
	}
	for _, candidate := range kept {
		inter := candidate.Interaction
		if inter.Liked && inter.LikedBy && !inter.Matched {
			s.events.EmitMutualMatch(requesterID, candidate.Profile.UserID, now)
		}
	}
}

// applyScoreThreshold drops low-scoring candidates from auto-generated
// buckets. MINE is exempt: an existing mutual match always shows.
func (s *Service) applyScoreThreshold(results []MatchResult, pref model.Preference, category enums.CategoryBucket) []MatchResult {
	if pref.MinMatchScore <= 0 || category == enums.CategoryMine {
		return results
	}

	out := make([]MatchResult, 0, len(results))
	for _, result := range results {
		if result.Score >= pref.MinMatchScore || hasBucket(result.Buckets, enums.CategoryMine) {
			out = append(out, result)
		}
	}
	return out
}

func filterByBucket(results []MatchResult, target enums.CategoryBucket) []MatchResult {
	out := make([]MatchResult, 0, len(results))
	for _, result := range results {
		if hasBucket(result.Buckets, target) {
			out = append(out, result)
		}
	}
	return out
}

func clampSize(size, fallback, max int) int {
	if size <= 0 {
		return fallback
	}
	if size > max {
		return max
	}
	return size
}

func (s *Service) resolvePremium(ctx context.Context, userID int64, at time.Time) (bool, error) {
	if s.premium == nil {
		return s.cfg.DefaultIsPremium, nil
	}

	isPremium, err := s.premium.IsPremiumActive(ctx, userID, at)
	if err != nil {
		return false, fmt.Errorf("resolve premium entitlement: %w", err)
	}
	if isPremium {
		return true, nil
	}
	return s.cfg.DefaultIsPremium, nil
}
