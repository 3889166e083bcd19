package handlers_test

import (
	"testing"

	"kongenga_back_end/internal/handlers"
)

func TestTestimonialListFilterApprovedOnly(t *testing.T) {
	filter := handlers.TestimonialListFilter("")
	if len(filter) != 1 {
		t.Fatalf("filtre = %v, veut uniquement isApproved", filter)
	}
	if filter["isApproved"] != true {
		t.Error("les lectures publiques ne doivent voir que les témoignages approuvés")
	}
}

func TestTestimonialListFilterByJob(t *testing.T) {
	filter := handlers.TestimonialListFilter("software-developer")
	if filter["jobId"] != "software-developer" {
		t.Errorf("jobId = %v, want software-developer", filter["jobId"])
	}
	if filter["isApproved"] != true {
		t.Error("le filtre par métier doit conserver isApproved")
	}
}
