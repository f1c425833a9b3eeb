package server

import (
	"net/http"

	"devsites/internal/services"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	s.encode(ctx, w, http.StatusOK, s.svc.Health.Check(ctx))
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	if r.URL.Path != "/api/" {
		http.NotFound(w, r)
		return
	}
	s.encode(ctx, w, http.StatusOK, s.svc.Health.Root(ctx))
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	var p services.ContactSubmitPayload
	if err := s.decode(r, &p); err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Contact.Submit(ctx, &p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) submitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	var p services.InquirySubmitPayload
	if err := s.decode(r, &p); err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Inquiry.Submit(ctx, &p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	var p services.NewsletterPayload
	if err := s.decode(r, &p); err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Newsletter.Subscribe(ctx, &p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	s.encode(ctx, w, http.StatusOK, s.svc.Stats.Get(ctx))
}

func (s *Server) projectSummary(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	p := &services.SummaryPayload{ProjectType: r.URL.Query().Get("project_type")}

	includeDomain, err := queryBool(r, "include_domain")
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	includeDatabase, err := queryBool(r, "include_database")
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	if includeDomain != nil {
		p.IncludeDomain = *includeDomain
	}
	if includeDatabase != nil {
		p.IncludeDatabase = *includeDatabase
	}

	res, err := s.svc.Inquiry.Summary(ctx, p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) pricing(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	s.encode(ctx, w, http.StatusOK, s.svc.Inquiry.Catalog(ctx))
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	p, err := listPayload(r)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Contact.List(ctx, p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) updateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	var p services.StatusUpdatePayload
	if err := s.decode(r, &p); err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	p.ID = s.mux.Vars(r)["id"]

	res, err := s.svc.Contact.UpdateStatus(ctx, &p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) listInquiries(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	p, err := listPayload(r)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Inquiry.List(ctx, p)
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}

func (s *Server) listSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)
	activeOnly, err := queryBool(r, "active_only")
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	res, err := s.svc.Newsletter.List(ctx, &services.SubscriberListPayload{ActiveOnly: activeOnly})
	if err != nil {
		s.fail(ctx, w, r, err)
		return
	}
	s.encode(ctx, w, http.StatusOK, res)
}
