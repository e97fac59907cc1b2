package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/grpc/orgreportv1"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// OrgReportHandler は OrgReportService の gRPC 実装です。
type OrgReportHandler struct {
	svc    orgreport.UseCase
	logger *logrus.Entry
	orgreportv1.UnimplementedOrgReportServiceServer
}

// NewOrgReportHandler は OrgReportHandler を生成します。
func NewOrgReportHandler(svc orgreport.UseCase, logger *logrus.Entry) *OrgReportHandler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &OrgReportHandler{svc: svc, logger: logger}
}

// GenerateReport は分析を実行し、結果を Struct として返します。
func (h *OrgReportHandler) GenerateReport(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	report, err := h.svc.GenerateReport(ctx)
	if err != nil {
		h.logger.WithError(err).Error("failed to generate org report")
		return nil, toStatusError(err)
	}

	h.logger.WithFields(logrus.Fields{
		"run_id":                  report.RunID,
		"employees":               report.EmployeeCount,
		"salary_findings":         len(report.SalaryFindings),
		"reporting_line_findings": len(report.ReportingLineFindings),
	}).Info("org report generated")
	if report.ReportingLineErr != nil {
		h.logger.WithError(report.ReportingLineErr).Warn("reporting line analysis incomplete")
	}

	resp, err := toProtoReport(report)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode report: %v", err))
	}
	return resp, nil
}

func toProtoReport(r *orgreport.Report) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		orgreportv1.FieldRunID:                 r.RunID,
		orgreportv1.FieldGeneratedAt:           r.GeneratedAt.UTC().Format(time.RFC3339Nano),
		orgreportv1.FieldEmployeeCount:         r.EmployeeCount,
		orgreportv1.FieldSalaryFindings:        toListValues(r.SalaryLines()),
		orgreportv1.FieldReportingLineFindings: toListValues(r.ReportingLineLines()),
	}
	if r.ReportingLineErr != nil {
		fields[orgreportv1.FieldReportingLineError] = r.ReportingLineErr.Error()
	}
	return structpb.NewStruct(fields)
}

func toListValues(lines []string) []interface{} {
	values := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		values = append(values, line)
	}
	return values
}
