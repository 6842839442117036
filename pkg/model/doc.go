// Package model defines the database models for the job portal.
//
// This package contains GORM models mapping to the PostgreSQL schema in
// db/migrations.
//
// # Core Models
//
//   - User: accounts, either JOB_SEEKER or EMPLOYER
//   - Job: postings owned by an employer
//   - Application: one job seeker's application to one job
//
// Applications carry a UNIQUE(job_id, job_seeker_id) constraint; duplicate
// prevention is a property of the schema, not of caller discipline.
package model
