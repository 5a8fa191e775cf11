// Package chatserver implements a multi-room real-time chat service.
//
// The service provides:
//   - Room directory management over REST (create, list, get, delete)
//   - Password-gated room access via bcrypt-hashed room passwords
//   - A WebSocket endpoint carrying the chat wire protocol
//     (join, message, image, video, audio, edit, delete)
//   - Message persistence with history replay on join
//   - Media upload with static serving of uploaded files
//
// For more information, see the README.md file.
package chatserver
