package server

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/notesos/ingest/constants"
	ingestpb "github.com/notesos/ingest/gen/proto/ingest/v1"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/embedding"
	"github.com/notesos/ingest/internal/index"
	"github.com/notesos/ingest/internal/repository"
	"github.com/notesos/ingest/internal/utils"
)

// Searcher is the read side of the retrieval index.
type Searcher interface {
	Search(ctx context.Context, queryEmbedding []float32, courseID uuid.UUID, topicID *uuid.UUID, limit int) ([]index.Match, error)
	HybridSearch(ctx context.Context, queryText string, queryEmbedding []float32, courseID uuid.UUID, limit int) ([]index.Match, error)
}

type IngestService struct {
	ingestpb.UnimplementedIngestServiceServer
	docs     repository.DocumentRepository
	topics   repository.TopicRepository
	broker   broker.Broker
	embedder embedding.Embedder
	searcher Searcher
	logger   *zap.Logger
}

func NewIngestService(
	docs repository.DocumentRepository,
	topics repository.TopicRepository,
	b broker.Broker,
	embedder embedding.Embedder,
	searcher Searcher,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		docs:     docs,
		topics:   topics,
		broker:   b,
		embedder: embedder,
		searcher: searcher,
		logger:   logger,
	}
}

func (s *IngestService) EnqueueDocument(ctx context.Context, req *ingestpb.EnqueueDocumentRequest) (*ingestpb.EnqueueDocumentResponse, error) {
	topicID, err := uuid.Parse(req.GetTopicId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "topic_id must be a uuid")
	}
	if req.GetTitle() == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if req.GetFilePath() == "" && req.GetText() == "" {
		return nil, status.Error(codes.InvalidArgument, "file_path or text is required")
	}

	format := constants.SourceFormat(req.GetSourceFormat())
	if format == "" {
		format = constants.MapExtToFormat(filepath.Ext(req.GetFilePath()))
	}
	if format == "" {
		return nil, status.Error(codes.InvalidArgument, "cannot determine source format")
	}

	// Anchor the upload before touching the queue. A missing topic is a
	// caller mistake, not an internal failure.
	if _, err := s.topics.GetTopic(ctx, topicID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "topic not found")
		}
		s.logger.Warn("resolve topic failed", zap.String("topic_id", topicID.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "resolve topic failed")
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		TopicID:      topicID,
		Title:        req.GetTitle(),
		UploaderName: req.GetUploaderName(),
		FilePath:     req.GetFilePath(),
		SourceFormat: format,
	})
	if err != nil {
		s.logger.Warn("create document failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "create document failed")
	}

	payload := broker.Payload{"document_id": doc.ID.String()}
	if req.GetText() != "" {
		payload["text"] = req.GetText()
	}
	// Broker refusal must surface to the producer, not be dropped.
	jobID, err := s.broker.Enqueue(ctx, constants.QueueChunking, payload)
	if err != nil {
		s.logger.Error("enqueue failed", zap.String("document_id", doc.ID.String()), zap.Error(err))
		return nil, status.Error(codes.Unavailable, "queue unavailable")
	}

	return &ingestpb.EnqueueDocumentResponse{
		Document: utils.ToPBDocument(doc),
		JobId:    jobID,
	}, nil
}

func (s *IngestService) GetJobStatus(ctx context.Context, req *ingestpb.GetJobStatusRequest) (*ingestpb.GetJobStatusResponse, error) {
	if req.GetJobId() == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	js, err := s.broker.GetStatus(ctx, req.GetJobId())
	if err != nil {
		s.logger.Warn("get job status failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "get job status failed")
	}
	if js == nil {
		return nil, status.Error(codes.NotFound, "job not found or expired")
	}

	return &ingestpb.GetJobStatusResponse{
		Id:     js.ID,
		Status: string(js.Status),
		Queue:  js.Queue,
		Result: string(js.Result),
		Error:  js.Error,
	}, nil
}

func (s *IngestService) Search(ctx context.Context, req *ingestpb.SearchRequest) (*ingestpb.SearchResponse, error) {
	courseID, err := uuid.Parse(req.GetCourseId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "course_id must be a uuid")
	}
	if req.GetQuery() == "" {
		return nil, status.Error(codes.InvalidArgument, "query is required")
	}
	var topicID *uuid.UUID
	if req.GetTopicId() != "" {
		id, err := uuid.Parse(req.GetTopicId())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "topic_id must be a uuid")
		}
		topicID = &id
	}

	vec, err := s.embedQuery(ctx, req.GetQuery())
	if err != nil {
		return nil, err
	}

	matches, err := s.searcher.Search(ctx, vec, courseID, topicID, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("search failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "search failed")
	}
	return &ingestpb.SearchResponse{Matches: toPBMatches(matches)}, nil
}

func (s *IngestService) HybridSearch(ctx context.Context, req *ingestpb.HybridSearchRequest) (*ingestpb.SearchResponse, error) {
	courseID, err := uuid.Parse(req.GetCourseId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "course_id must be a uuid")
	}
	if req.GetQuery() == "" {
		return nil, status.Error(codes.InvalidArgument, "query is required")
	}

	vec, err := s.embedQuery(ctx, req.GetQuery())
	if err != nil {
		return nil, err
	}

	matches, err := s.searcher.HybridSearch(ctx, req.GetQuery(), vec, courseID, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("hybrid search failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "hybrid search failed")
	}
	return &ingestpb.SearchResponse{Matches: toPBMatches(matches)}, nil
}

func (s *IngestService) embedQuery(ctx context.Context, query string) ([]float32, error) {
	vecs, err := s.embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		s.logger.Warn("query embedding failed", zap.Error(err))
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Unavailable, "embedding provider unavailable")
	}
	if len(vecs) != 1 {
		return nil, status.Error(codes.Internal, "embedding provider returned no vector")
	}
	return vecs[0], nil
}

func toPBMatches(matches []index.Match) []*ingestpb.ChunkMatch {
	out := make([]*ingestpb.ChunkMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, &ingestpb.ChunkMatch{
			ChunkId:       m.ChunkID.String(),
			DocumentId:    m.DocumentID.String(),
			ChunkIndex:    int32(m.ChunkIndex),
			Text:          m.Text,
			DocumentTitle: m.DocumentTitle,
			UploaderName:  m.UploaderName,
			VectorScore:   m.VectorScore,
			LexicalScore:  m.LexicalScore,
			CombinedScore: m.CombinedScore,
		})
	}
	return out
}
