package usecase

import (
	"context"
	"errors"
	"fmt"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// dispatchRender routes a validated creative to the renderer matching its
// format type. Generative formats go to the build agent, everything else
// gets a static preview.
func (s *SyncService) dispatchRender(ctx context.Context, vc domain.ValidatedCreative, existing *domain.CreativeRecord) (*domain.RenderOutput, error) {
	if vc.Spec != nil && vc.Spec.IsGenerative() {
		return s.renderGenerative(ctx, vc, existing)
	}
	return s.renderStatic(ctx, vc, existing)
}

func (s *SyncService) renderGenerative(ctx context.Context, vc domain.ValidatedCreative, existing *domain.CreativeRecord) (*domain.RenderOutput, error) {
	breq := port.BuildRequest{
		AgentURL:          vc.Format.Namespace,
		FormatID:          vc.Format.ID,
		Message:           domain.ExtractMessage(vc.Name, vc.Assets, vc.Inputs),
		PromotedOfferings: domain.ExtractPromotedOfferings(vc.Assets),
		Finalize:          vc.Approve,
	}
	// Resyncing an existing generated creative refines the previous build
	// instead of starting a fresh conversation.
	if existing != nil {
		breq.ContextID = existing.Data.BuildContextID
	}

	bresp, err := s.renderer.Build(ctx, breq)
	if errors.Is(err, port.ErrNoCredential) {
		return nil, fmt.Errorf("generative format %s requires a build credential and none is configured", vc.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("generative build for %s: %v", vc.Format, err)
	}

	if got := bresp.CreativeOutput.OutputFormat; got != "" && vc.Spec != nil && !vc.Spec.AcceptsOutput(got) {
		return nil, fmt.Errorf("build produced output format %q, format %s accepts %v",
			got, vc.Format, vc.Spec.OutputFormatIDs)
	}

	out := &domain.RenderOutput{
		Assets:         bresp.CreativeOutput.Assets,
		BuildStatus:    bresp.Status,
		BuildContextID: bresp.ContextID,
		RawResponse:    bresp.Raw,
	}
	out.MediaURL = domain.ExtractPrimaryURL(bresp.CreativeOutput.Assets)
	out.Width, out.Height = domain.ExtractDimensions(bresp.CreativeOutput.Assets)
	return out, nil
}

func (s *SyncService) renderStatic(ctx context.Context, vc domain.ValidatedCreative, existing *domain.CreativeRecord) (*domain.RenderOutput, error) {
	directURL := domain.ExtractPrimaryURL(vc.Assets)
	if directURL == "" && existing != nil {
		directURL = existing.Data.MediaURL
	}

	manifest := port.PreviewManifest{
		CreativeID: vc.CreativeID,
		Name:       vc.Name,
		FormatID:   vc.Format.ID,
		MediaURL:   directURL,
		Assets:     vc.Assets,
	}
	presp, err := s.renderer.Preview(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("static preview for %s: %v", vc.Format, err)
	}

	out := &domain.RenderOutput{}
	for _, prev := range presp.Previews {
		if len(prev.Renders) == 0 {
			continue
		}
		r := prev.Renders[0]
		out.MediaURL = r.PreviewURL
		out.Width = r.Width
		out.Height = r.Height
		break
	}
	if out.MediaURL == "" {
		if directURL == "" {
			return nil, fmt.Errorf("creative %s: no previews returned and no media_url provided", vc.CreativeID)
		}
		out.MediaURL = directURL
	}
	if out.Width == 0 && out.Height == 0 {
		out.Width, out.Height = domain.ExtractDimensions(vc.Assets)
	}
	return out, nil
}
