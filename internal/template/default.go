// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

// DefaultTemplate is the built-in project report template. Its
// placeholders are the canonical set callers are expected to collect
// data for; Placeholders() reports them for introspection.
const DefaultTemplate = `# {{document_title}}

## Executive Summary
{{executive_summary}}

## Project Information
- **Project Name:** {{project_name}}
- **Project Manager:** {{project_manager}}
- **Start Date:** {{start_date}}
- **End Date:** {{end_date}}
- **Status:** {{project_status}}

## Objectives
{{project_objectives}}

## Scope
### In Scope
{{in_scope_items}}

### Out of Scope
{{out_scope_items}}

## Stakeholders
| Name | Role | Contact | Responsibility |
|------|------|---------|----------------|
{{stakeholder_table}}

## Timeline
{{timeline_section}}

## Budget
- **Total Budget:** {{total_budget}}
- **Spent to Date:** {{spent_amount}}
- **Remaining:** {{remaining_budget}}

### Budget Breakdown
{{budget_breakdown}}

## Risks and Mitigation
{{risks_section}}

## Key Deliverables
{{deliverables_list}}

## Success Metrics
{{success_metrics}}

## Additional Notes
{{additional_notes}}

---
*Document generated on: {{generation_date}}*
*Prepared by: {{prepared_by}}*
`
