package domain

// CanModify decides whether requester may mutate or delete a resource owned
// by ownerID. Pure function: admins may touch anything, otherwise only the
// owner may.
func CanModify(ownerID, requesterID, requesterRole string) bool {
	if requesterRole == RoleAdmin {
		return true
	}
	return ownerID != "" && ownerID == requesterID
}

// CanDeleteComment applies the extended rule for comment deletion: the
// comment's author, the parent post's author, or an admin.
func CanDeleteComment(commentOwnerID, postOwnerID, requesterID, requesterRole string) bool {
	if requesterRole == RoleAdmin {
		return true
	}
	if commentOwnerID != "" && commentOwnerID == requesterID {
		return true
	}
	return postOwnerID != "" && postOwnerID == requesterID
}
