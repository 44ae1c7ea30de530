package memory

import (
	"github.com/viant/bouquet/model/session"
	"github.com/viant/bouquet/service/dao"
	"github.com/viant/bouquet/service/dao/criteria"
	"github.com/viant/bouquet/service/dao/store"
)

// Service keeps session reports in memory for the lifetime of the process.
// List accepts "ID", "Source" and "Destination" parameters.
type Service struct {
	*store.MemoryStore[string, session.Report]
}

var _ dao.Service[string, session.Report] = (*Service)(nil)

func reportID(r *session.Report) string { return r.ID }

func filter(r *session.Report, parameters []*dao.Parameter) bool {
	return criteria.Match(r.Field, parameters)
}

// New creates a report DAO
func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore[string, session.Report](reportID, filter)}
}
