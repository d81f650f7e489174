// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./ngo.go -destination=../mocks/mock_ngo_repository.go -package=mocks NGORepositoryIface
//go:generate mockgen -source=./cause.go -destination=../mocks/mock_cause_repository.go -package=mocks CauseRepositoryIface
//go:generate mockgen -source=./opportunity.go -destination=../mocks/mock_opportunity_repository.go -package=mocks OpportunityRepositoryIface
//go:generate mockgen -source=./donation.go -destination=../mocks/mock_donation_repository.go -package=mocks DonationRepositoryIface
//go:generate mockgen -source=./volunteer_application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks ProfileRepositoryIface
//go:generate mockgen -source=./user_role.go -destination=../mocks/mock_user_role_repository.go -package=mocks UserRoleRepositoryIface
//go:generate mockgen -source=./authz_audit_log.go -destination=../mocks/mock_authz_audit_log_repository.go -package=mocks AuthzAuditLogRepositoryIface
