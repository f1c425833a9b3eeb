package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("devsites", func() {
	Title("DEVSITES404 API")
	Description("Backend API for the DEVSITES404 agency site: contact form, project quotes and newsletter")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8001")
		})
	})
})

// Health check
var _ = Service("health", func() {
	Description("Health check and API banner")

	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})

	Method("root", func() {
		Result(RootResult)
		HTTP(func() {
			GET("/api/")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Enum("healthy", "degraded")
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("DEVSITES404 API")
	})
	Required("status", "service")
})

var RootResult = Type("RootResult", func() {
	Attribute("message", String, func() {
		Example("DEVSITES404 API is running")
	})
	Attribute("version", String, func() {
		Example("1.0.0")
	})
	Required("message", "version")
})

// Contact form
var _ = Service("contact", func() {
	Description("Contact form submissions")
	Error("bad_request")
	Error("store_failure", ErrorResult, "Persistence failed", func() {
		Fault()
		Temporary()
	})

	Method("submit", func() {
		Description("Submit the contact form")
		Payload(ContactSubmitPayload)
		Result(ContactSubmitResult)
		HTTP(func() {
			POST("/api/contact")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})

	Method("list", func() {
		Description("List contact submissions, newest first")
		Payload(ListPayload)
		Result(ContactList)
		HTTP(func() {
			GET("/api/admin/contacts")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})

	Method("update_status", func() {
		Description("Move a contact submission to a new status")
		Payload(StatusUpdatePayload)
		Result(StatusUpdateResult)
		HTTP(func() {
			PATCH("/api/admin/contacts/{id}/status")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})
})

var ContactSubmitPayload = Type("ContactSubmitPayload", func() {
	Attribute("name", String, func() {
		MinLength(1)
		MaxLength(100)
		Example("Ada Lovelace")
	})
	Attribute("email", String, func() {
		Format(FormatEmail)
		Example("ada@example.com")
	})
	Attribute("company", String)
	Attribute("project", String)
	Attribute("message", String, func() {
		MinLength(1)
		MaxLength(5000)
	})
	Attribute("budget", String)
	Required("name", "email", "message")
})

var ContactSubmitResult = Type("ContactSubmitResult", func() {
	Attribute("success", Boolean)
	Attribute("message", String)
	Attribute("id", String)
	Required("success", "message", "id")
})

var ContactType = Type("Contact", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("email", String)
	Attribute("company", String)
	Attribute("project", String)
	Attribute("message", String)
	Attribute("budget", String)
	Attribute("status", String, func() {
		Enum("new", "contacted", "closed")
	})
	Attribute("created_at", String, func() {
		Format(FormatDateTime)
	})
	Attribute("updated_at", String, func() {
		Format(FormatDateTime)
	})
	Required("id", "name", "email", "message", "status", "created_at", "updated_at")
})

var ContactList = Type("ContactList", func() {
	Attribute("contacts", ArrayOf(ContactType))
	Required("contacts")
})

var ListPayload = Type("ListPayload", func() {
	Attribute("skip", Int, "Records to skip", func() {
		Minimum(0)
		Default(0)
	})
	Attribute("limit", Int, "Page size", func() {
		Minimum(1)
		Maximum(500)
		Default(100)
	})
})

var StatusUpdatePayload = Type("StatusUpdatePayload", func() {
	Attribute("id", String, "Contact ID")
	Attribute("status", String, func() {
		Enum("new", "contacted", "closed")
	})
	Required("id", "status")
})

var StatusUpdateResult = Type("StatusUpdateResult", func() {
	Attribute("updated", Boolean, "False when no contact has the id")
	Required("updated")
})

// Project inquiries and quotes
var _ = Service("inquiry", func() {
	Description("Project inquiries and price quotes")
	Error("bad_request")
	Error("store_failure", ErrorResult, "Persistence failed", func() {
		Fault()
		Temporary()
	})

	Method("submit", func() {
		Description("Submit a project inquiry; the quote is stored with it")
		Payload(InquirySubmitPayload)
		Result(InquirySubmitResult)
		HTTP(func() {
			POST("/api/project-inquiry")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})

	Method("list", func() {
		Description("List project inquiries, newest first")
		Payload(ListPayload)
		Result(InquiryList)
		HTTP(func() {
			GET("/api/admin/inquiries")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})

	Method("summary", func() {
		Description("Price breakdown for an option set")
		Payload(ProjectOption)
		Result(Summary)
		HTTP(func() {
			GET("/api/project-summary")
			Param("project_type")
			Param("include_domain")
			Param("include_database")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("pricing", func() {
		Description("Published price list")
		Result(Catalog)
		HTTP(func() {
			GET("/api/pricing")
			Response(StatusOK)
		})
	})
})

var ProjectOption = Type("ProjectOption", func() {
	Attribute("project_type", String, "basic or standard", func() {
		Example("standard")
	})
	Attribute("include_domain", Boolean, func() {
		Default(false)
	})
	Attribute("include_database", Boolean, func() {
		Default(false)
	})
	Required("project_type")
})

var InquirySubmitPayload = Type("InquirySubmitPayload", func() {
	Extend(ProjectOption)
	Attribute("name", String, func() {
		MinLength(1)
		MaxLength(100)
	})
	Attribute("email", String, func() {
		Format(FormatEmail)
	})
	Attribute("additional_details", String)
	Required("name", "email")
})

var InquirySubmitResult = Type("InquirySubmitResult", func() {
	Attribute("success", Boolean)
	Attribute("estimated_cost", Float64, func() {
		Example(89.98)
	})
	Attribute("message", String)
	Attribute("id", String)
	Required("success", "estimated_cost", "message", "id")
})

var Inquiry = Type("Inquiry", func() {
	Extend(ProjectOption)
	Attribute("id", String)
	Attribute("name", String)
	Attribute("email", String)
	Attribute("estimated_cost", Float64, "Quote at submission time")
	Attribute("additional_details", String)
	Attribute("status", String, func() {
		Enum("pending", "quoted", "accepted", "completed")
	})
	Attribute("created_at", String, func() {
		Format(FormatDateTime)
	})
	Attribute("updated_at", String, func() {
		Format(FormatDateTime)
	})
	Required("id", "name", "email", "estimated_cost", "status", "created_at", "updated_at")
})

var InquiryList = Type("InquiryList", func() {
	Attribute("inquiries", ArrayOf(Inquiry))
	Required("inquiries")
})

var AddonLine = Type("AddonLine", func() {
	Attribute("name", String)
	Attribute("cost", Float64)
	Attribute("features", ArrayOf(String))
	Required("name", "cost", "features")
})

var Summary = Type("Summary", func() {
	Attribute("project_type", String, "Title-cased label", func() {
		Example("Standard")
	})
	Attribute("base_cost", Float64)
	Attribute("total_cost", Float64)
	Attribute("features", ArrayOf(String), "Base features followed by add-on features")
	Attribute("addons", ArrayOf(AddonLine))
	Attribute("estimated_timeline", String, func() {
		Example("14 days")
	})
	Attribute("support_level", String, func() {
		Enum("Basic", "Priority")
	})
	Required("project_type", "base_cost", "total_cost", "features", "addons", "estimated_timeline", "support_level")
})

var Addon = Type("Addon", func() {
	Attribute("name", String)
	Attribute("price", Float64)
	Attribute("features", ArrayOf(String))
	Required("name", "price", "features")
})

var Plan = Type("Plan", func() {
	Attribute("project_type", String)
	Attribute("label", String)
	Attribute("base_price", Float64)
	Attribute("features", ArrayOf(String))
	Attribute("support_level", String)
	Required("project_type", "label", "base_price", "features", "support_level")
})

var Catalog = Type("Catalog", func() {
	Attribute("plans", ArrayOf(Plan))
	Attribute("addons", MapOf(String, Addon))
	Attribute("estimated_timeline", String)
	Required("plans", "addons", "estimated_timeline")
})

// Newsletter
var _ = Service("newsletter", func() {
	Description("Newsletter signups")
	Error("bad_request")
	Error("store_failure", ErrorResult, "Persistence failed", func() {
		Fault()
		Temporary()
	})

	Method("subscribe", func() {
		Description("Sign an address up; storage failures still answer success")
		Payload(NewsletterPayload)
		Result(NewsletterResult)
		HTTP(func() {
			POST("/api/newsletter")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("list", func() {
		Description("List subscribers, newest first")
		Payload(SubscriberListPayload)
		Result(SubscriberList)
		HTTP(func() {
			GET("/api/admin/newsletter")
			Param("active_only")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("store_failure", StatusInternalServerError)
		})
	})
})

var NewsletterPayload = Type("NewsletterPayload", func() {
	Attribute("email", String, func() {
		Format(FormatEmail)
	})
	Required("email")
})

var NewsletterResult = Type("NewsletterResult", func() {
	Attribute("success", Boolean)
	Attribute("subscribed", Boolean)
	Attribute("message", String)
	Required("success", "subscribed", "message")
})

var SubscriberListPayload = Type("SubscriberListPayload", func() {
	Attribute("active_only", Boolean, func() {
		Default(true)
	})
})

var Subscriber = Type("Subscriber", func() {
	Attribute("id", String)
	Attribute("email", String)
	Attribute("subscribed", Boolean)
	Attribute("created_at", String, func() {
		Format(FormatDateTime)
	})
	Attribute("updated_at", String, func() {
		Format(FormatDateTime)
	})
	Required("id", "email", "subscribed", "created_at", "updated_at")
})

var SubscriberList = Type("SubscriberList", func() {
	Attribute("subscribers", ArrayOf(Subscriber))
	Required("subscribers")
})

// Stats
var _ = Service("stats", func() {
	Description("Public company stats widget")

	Method("get", func() {
		Description("Record counts; defaults are served when the store is unavailable")
		Result(Stats)
		HTTP(func() {
			GET("/api/stats")
			Response(StatusOK)
		})
	})
})

var Stats = Type("Stats", func() {
	Attribute("projects_completed", Int64)
	Attribute("client_satisfaction", Int)
	Attribute("average_turnaround", Int, "Days")
	Attribute("total_contacts", Int64)
	Attribute("total_inquiries", Int64)
	Attribute("newsletter_subscribers", Int64)
	Required("projects_completed", "client_satisfaction", "average_turnaround",
		"total_contacts", "total_inquiries", "newsletter_subscribers")
})
